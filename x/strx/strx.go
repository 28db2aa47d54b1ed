package strx

// Coalesce returns s if non-empty, otherwise d.
func Coalesce(s, d string) string {
	if s == "" {
		return d
	}
	return s
}

// SkipSpaces returns the index of the first byte in s that is not
// ASCII whitespace, or len(s) when there is none.
func SkipSpaces(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
		default:
			return i
		}
	}
	return len(s)
}
