package export

import (
	_ "embed"
	"strings"
	"unicode"
)

// DejaVu Sans covers Latin, Greek, Cyrillic and most other alphabetic scripts.
// See fonts/LICENSE.
const fontFamily = "DejaVu"

var (
	//go:embed fonts/DejaVuSans.ttf
	regularFont []byte

	//go:embed fonts/DejaVuSans-Bold.ttf
	boldFont []byte
)

// pdfText keeps s within the Basic Multilingual Plane, the range the PDF writer
// can encode. Anything above it becomes U+FFFD.
func pdfText(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return unicode.ReplacementChar
		}
		return r
	}, s)
}
