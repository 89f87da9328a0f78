package gather

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DecodeBestEffort decodes raw file bytes to a string by trying a fixed
// list of encodings: UTF-8, UTF-16 (BOM required), then Windows-1251.
// As a last resort invalid UTF-8 sequences are replaced, never dropped,
// so decoding cannot fail.
func DecodeBestEffort(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	if hasUTF16BOM(raw) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if out, err := dec.Bytes(raw); err == nil && utf8.Valid(out) {
			return string(out)
		}
	}

	if out, err := charmap.Windows1251.NewDecoder().Bytes(raw); err == nil && utf8.Valid(out) {
		return string(out)
	}

	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}

func hasUTF16BOM(raw []byte) bool {
	return len(raw) >= 2 &&
		((raw[0] == 0xFF && raw[1] == 0xFE) || (raw[0] == 0xFE && raw[1] == 0xFF))
}
