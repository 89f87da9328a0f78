package gather

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBestEffortUTF8(t *testing.T) {
	assert.Equal(t, "hello", DecodeBestEffort([]byte("hello")))
	assert.Equal(t, "Привет", DecodeBestEffort([]byte("Привет")))
}

func TestDecodeBestEffortUTF16(t *testing.T) {
	// "hi" as UTF-16LE with BOM.
	raw := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	assert.Equal(t, "hi", DecodeBestEffort(raw))

	// Big-endian variant.
	raw = []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}
	assert.Equal(t, "hi", DecodeBestEffort(raw))
}

func TestDecodeBestEffortWindows1251(t *testing.T) {
	// "Привет" encoded as Windows-1251; not valid UTF-8, no BOM.
	raw := []byte{0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2}
	assert.Equal(t, "Привет", DecodeBestEffort(raw))
}

func TestDecodeBestEffortNeverFails(t *testing.T) {
	raw := []byte{'o', 'k', 0xFF, 0xFE, 0xFD}
	out := DecodeBestEffort(raw)
	assert.True(t, strings.HasPrefix(out, "ok"))
	assert.True(t, utf8.ValidString(out), "output must always be valid UTF-8")
}
