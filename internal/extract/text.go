package extract

import (
	"strings"
	"unicode/utf8"
)

// SanitizeUTF8 remove bytes inválidos para UTF-8 (evita erro 22021 no Postgres)
func SanitizeUTF8(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			// byte inválido: descarta
			s = s[1:]
			continue
		}
		b.WriteRune(r)
		s = s[size:]
	}
	return b.String()
}
