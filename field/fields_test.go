package field

import (
	"testing"

	"github.com/indigo-web/httpwire/config"
	"github.com/indigo-web/httpwire/internal/bytecursor"
	"github.com/stretchr/testify/require"
)

type wantedField struct {
	Name   string
	Values []string
}

var (
	simpleStringified = "Host: example.com\r\n" +
		"User-Agent: curl/8.1.2\r\n" +
		"Accept: */*\r\n" +
		"\r\n"

	simpleInternal = []wantedField{
		{"Host", []string{"example.com"}},
		{"User-Agent", []string{"curl/8.1.2"}},
		{"Accept", []string{"*/*"}},
	}

	quotedStringified = "Host: example.com\r\n" +
		"Example-Dates: \"Sat, 04 May 1996\", \"Wed, 14 Sep 2005\"\r\n" +
		"Accept: */*\r\n" +
		"Backslash-Test: \"with a \\\\ backslash and a \\\" quote\"\r\n" +
		"User-Agent: curl/8.1.2\r\n" +
		"\r\n"

	quotedInternal = []wantedField{
		{"Host", []string{"example.com"}},
		{"Example-Dates", []string{`"Sat, 04 May 1996"`, `"Wed, 14 Sep 2005"`}},
		{"Accept", []string{"*/*"}},
		{"Backslash-Test", []string{`"with a \\ backslash and a \" quote"`}},
		{"User-Agent", []string{"curl/8.1.2"}},
	}

	chromeStringified = "Host: localhost:8000\r\n" +
		"Connection: keep-alive\r\n" +
		"Pragma: no-cache\r\n" +
		"Cache-Control: no-cache\r\n" +
		"sec-ch-ua: \"Not.A/Brand\";v=\"8\", \"Chromium\";v=\"114\", \"Google Chrome\";v=\"114\"\r\n" +
		"sec-ch-ua-mobile: ?0\r\n" +
		"sec-ch-ua-platform: \"Linux\"\r\n" +
		"DNT: 1\r\n" +
		"Upgrade-Insecure-Requests: 1\r\n" +
		"User-Agent: Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36\r\n" +
		"Accept: text/html, application/xhtml+xml, application/xml;q=0.9, image/avif, image/webp, image/apng, */*;q=0.8, application/signed-exchange;v=b3;q=0.7\r\n" +
		"Sec-Fetch-Site: cross-site\r\n" +
		"Sec-Fetch-Mode: navigate\r\n" +
		"Sec-Fetch-User: ?1\r\n" +
		"Sec-Fetch-Dest: document\r\n" +
		"Accept-Encoding: gzip, deflate, br\r\n" +
		"Accept-Language: en-US, en;q=0.9, pl-PL;q=0.8, pl;q=0.7\r\n" +
		"\r\n"

	chromeInternal = []wantedField{
		{"Host", []string{"localhost:8000"}},
		{"Connection", []string{"keep-alive"}},
		{"Pragma", []string{"no-cache"}},
		{"Cache-Control", []string{"no-cache"}},
		{"sec-ch-ua", []string{
			`"Not.A/Brand";v="8"`, `"Chromium";v="114"`, `"Google Chrome";v="114"`,
		}},
		{"sec-ch-ua-mobile", []string{"?0"}},
		{"sec-ch-ua-platform", []string{`"Linux"`}},
		{"DNT", []string{"1"}},
		{"Upgrade-Insecure-Requests", []string{"1"}},
		{"User-Agent", []string{
			"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36",
		}},
		{"Accept", []string{
			"text/html", "application/xhtml+xml", "application/xml;q=0.9",
			"image/avif", "image/webp", "image/apng", "*/*;q=0.8",
			"application/signed-exchange;v=b3;q=0.7",
		}},
		{"Sec-Fetch-Site", []string{"cross-site"}},
		{"Sec-Fetch-Mode", []string{"navigate"}},
		{"Sec-Fetch-User", []string{"?1"}},
		{"Sec-Fetch-Dest", []string{"document"}},
		{"Accept-Encoding", []string{"gzip", "deflate", "br"}},
		{"Accept-Language", []string{"en-US", "en;q=0.9", "pl-PL;q=0.8", "pl;q=0.7"}},
	}
)

func parseFields(t *testing.T, raw string) *Fields {
	fields, err := Parse(bytecursor.New([]byte(raw)), config.Default().Fields)
	require.NoError(t, err)
	return fields
}

func buildFields(wanted []wantedField) *Fields {
	fields := NewFields()
	for _, w := range wanted {
		for _, value := range w.Values {
			fields.Add(w.Name, value)
		}
	}

	return fields
}

func requireFields(t *testing.T, fields *Fields, wanted []wantedField) {
	require.Equal(t, len(wanted), fields.Len())

	for _, w := range wanted {
		values, found := fields.Get(w.Name)
		require.Truef(t, found, "field %q does not exist", w.Name)
		require.Equal(t, len(w.Values), values.Count(), w.Name)

		var got []string
		for v := range values.Iter() {
			got = append(got, string(v.Bytes()))
		}
		require.Equal(t, w.Values, got, w.Name)
	}
}

func TestParse(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		requireFields(t, parseFields(t, simpleStringified), simpleInternal)
	})

	t.Run("quoted", func(t *testing.T) {
		requireFields(t, parseFields(t, quotedStringified), quotedInternal)
	})

	t.Run("chrome", func(t *testing.T) {
		requireFields(t, parseFields(t, chromeStringified), chromeInternal)
	})

	t.Run("empty section", func(t *testing.T) {
		fields := parseFields(t, "\r\n")
		require.True(t, fields.Empty())
	})

	t.Run("repeated name extends entry", func(t *testing.T) {
		fields := parseFields(t, "Accept: one,two\r\nAccept: three\r\n\r\n")
		requireFields(t, fields, []wantedField{
			{"Accept", []string{"one", "two", "three"}},
		})
	})

	t.Run("space after colon is optional", func(t *testing.T) {
		fields := parseFields(t, "Host:example.com\r\n\r\n")
		requireFields(t, fields, []wantedField{{"Host", []string{"example.com"}}})
	})
}

func TestParseNegative(t *testing.T) {
	parse := func(raw string) error {
		_, err := Parse(bytecursor.New([]byte(raw)), config.Default().Fields)
		return err
	}

	t.Run("missing colon", func(t *testing.T) {
		require.ErrorIs(t, parse("Host example.com\r\n\r\n"), ErrMalformed)
	})

	t.Run("missing final blank line", func(t *testing.T) {
		require.ErrorIs(t, parse("Host: example.com\r\n"), ErrIncorrectlyTerminated)
	})

	t.Run("lone LF line break", func(t *testing.T) {
		require.ErrorIs(t, parse("Host: example.com\n\n"), ErrInvalidToken)
	})

	t.Run("bare CR in value", func(t *testing.T) {
		require.ErrorIs(t, parse("Host: exa\rmple\r\n\r\n"), ErrMalformed)
	})

	t.Run("control byte in value", func(t *testing.T) {
		require.ErrorIs(t, parse("Host: exa\x01mple\r\n\r\n"), ErrInvalidToken)
	})

	t.Run("unterminated quoted string", func(t *testing.T) {
		require.ErrorIs(t, parse("Name: \"oops\r\n\r\n"), ErrInvalidQuotedText)
	})

	t.Run("unterminated comment", func(t *testing.T) {
		require.ErrorIs(t, parse("Name: (oops\r\n\r\n"), ErrInvalidComment)
	})

	t.Run("value cut by end of buffer", func(t *testing.T) {
		require.ErrorIs(t, parse("Name: stub"), ErrIncorrectlyTerminated)
	})

	t.Run("comment cut by end of buffer", func(t *testing.T) {
		require.ErrorIs(t, parse("Name: (abc"), ErrIncorrectlyTerminated)
	})
}

func TestParseLimits(t *testing.T) {
	limits := config.Fields{MaxNameLength: 64, MaxValueLength: 8}

	parse := func(raw string) error {
		_, err := Parse(bytecursor.New([]byte(raw)), limits)
		return err
	}

	t.Run("value of exactly the limit", func(t *testing.T) {
		require.NoError(t, parse("Name: 12345678\r\n\r\n"))
	})

	t.Run("value a byte over the limit", func(t *testing.T) {
		require.ErrorIs(t, parse("Name: 123456789\r\n\r\n"), ErrValueTooLong)
	})

	t.Run("every list member is measured alone", func(t *testing.T) {
		require.NoError(t, parse("Name: 12345678, 12345678, 12345678\r\n\r\n"))
	})
}

func TestSerialize(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		require.Equal(t, simpleStringified, string(buildFields(simpleInternal).Serialize()))
	})

	t.Run("quoted", func(t *testing.T) {
		require.Equal(t, quotedStringified, string(buildFields(quotedInternal).Serialize()))
	})

	t.Run("chrome", func(t *testing.T) {
		require.Equal(t, chromeStringified, string(buildFields(chromeInternal).Serialize()))
	})

	t.Run("empty section serializes to nothing", func(t *testing.T) {
		require.Empty(t, NewFields().Serialize())
	})
}

func TestRoundTrip(t *testing.T) {
	for _, raw := range []string{simpleStringified, quotedStringified, chromeStringified} {
		require.Equal(t, raw, string(parseFields(t, raw).Serialize()))
	}
}

func TestContains(t *testing.T) {
	fields := parseFields(t, chromeStringified)

	require.True(t, fields.ContainsName("Accept-Encoding"))
	require.False(t, fields.ContainsName("accept-encoding"))
	require.True(t, fields.ContainsValue("Accept-Encoding", "gzip"))
	require.False(t, fields.ContainsValue("Accept-Encoding", "GZIP"))
	require.True(t, fields.ContainsValueFold("Accept-Encoding", "GZIP"))
	require.True(t, fields.ContainsValueExact("Sec-Fetch-Mode", "navigate"))
	require.False(t, fields.ContainsValueExact("Accept-Encoding", "gzip"))
	require.True(t, fields.ContainsValues("Accept-Encoding", "br", "gzip"))
	require.False(t, fields.ContainsValuesExact("Accept-Encoding", "br", "gzip"))
	require.True(t, fields.ContainsValuesExact("Accept-Encoding", "gzip", "deflate", "br"))
}

func TestGetSingle(t *testing.T) {
	fields := parseFields(t, chromeStringified)

	value, found := fields.GetSingle("Sec-Fetch-Dest")
	require.True(t, found)
	require.Equal(t, "document", string(value.Bytes()))

	_, found = fields.GetSingle("Accept-Encoding")
	require.False(t, found)

	_, found = fields.GetSingle("Nonexistent")
	require.False(t, found)
}

func TestIterOrder(t *testing.T) {
	fields := parseFields(t, simpleStringified)

	var names []string
	for name := range fields.Iter() {
		names = append(names, name)
	}

	require.Equal(t, []string{"Host", "User-Agent", "Accept"}, names)
}

func BenchmarkParse(b *testing.B) {
	raw := []byte(chromeStringified)
	limits := config.Default().Fields
	b.SetBytes(int64(len(raw)))
	b.ResetTimer()

	for range b.N {
		_, _ = Parse(bytecursor.New(raw), limits)
	}
}
