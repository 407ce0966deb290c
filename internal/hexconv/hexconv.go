package hexconv

// Halfbyte maps ASCII hex digits to their values. Every other byte maps to
// 0xff, so a|b > 0x0f tells whether either of two looked up halves was
// invalid without branching on each separately.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xff
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
	}

	for c := byte('A'); c <= 'F'; c++ {
		table[c] = c - 'A' + 10
	}

	return table
}()
