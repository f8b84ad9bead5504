package pdf

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// encodeText prepares s for drawing in the given face. Core fonts use
// WinAnsiEncoding, so runes outside Windows-1252 become '?'.
func encodeText(s string, ref fontRef) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	if ref.utf8 {
		return s
	}
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}
