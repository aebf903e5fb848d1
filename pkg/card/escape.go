package card

import "strings"

// normalizeEscapes replaces each literal backslash-n pair in s with a line
// break. Strings without the pair are returned unchanged.
func normalizeEscapes(s string) string {
	if !strings.Contains(s, `\n`) {
		return s
	}
	b := []byte(s)
	for i := 0; i < len(b)-1; i++ {
		if b[i] == '\\' && b[i+1] == 'n' {
			b[i] = '\n'
			b = append(b[:i+1], b[i+2:]...)
		}
	}
	return string(b)
}
