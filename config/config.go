package config

type (
	Fields struct {
		// MaxNameLength caps a single field name. A name reaching the cap
		// without meeting a colon renders the field malformed.
		MaxNameLength int
		// MaxValueLength caps a single field value (one list member, not
		// the joined list).
		MaxValueLength int
	}

	Builder struct {
		// ValueSpace sizes the arena backing values which had to be
		// rewritten (quoted and escaped) by a message builder. Default is
		// the initial allocation, Maximal the hard limit; values not
		// fitting the arena fall back to their own allocations.
		ValueSpace struct {
			Default, Maximal int
		}
	}
)

// Config holds the parsing restrictions shared by all message parsers.
//
// Always modify defaults (returned via Default()) instead of initializing
// the struct manually.
type Config struct {
	Fields  Fields
	Builder Builder
}

// Default returns the limits messages are parsed with unless stated
// otherwise.
func Default() *Config {
	cfg := &Config{
		Fields: Fields{
			MaxNameLength: 1024,
			// generous enough for extremely long cookies and still bounded
			MaxValueLength: 100_000,
		},
	}
	cfg.Builder.ValueSpace.Default = 1024
	cfg.Builder.ValueSpace.Maximal = 64 * 1024

	return cfg
}
