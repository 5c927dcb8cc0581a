// --- START OF FINAL REVISED FILE pkg/summarizer/encoding/handler_test.go ---
package encoding_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stackvity/folder-summary/pkg/summarizer/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Helper function to encode string to specified encoding bytes
func encodeBytes(t *testing.T, text string, enc transform.Transformer) []byte {
	t.Helper()
	encodedBytes, _, err := transform.Bytes(enc, []byte(text))
	require.NoError(t, err)
	return encodedBytes
}

func TestDecode_UTF8(t *testing.T) {
	handler := encoding.NewCharsetHandler("")
	input := []byte("Hello, UTF-8 wörld!")

	text, name, err := handler.Decode(input)

	require.NoError(t, err)
	assert.Equal(t, "utf-8", name)
	assert.Equal(t, string(input), text, "Content should remain unchanged")
}

func TestDecode_UTF8WithBOM(t *testing.T) {
	handler := encoding.NewCharsetHandler("")
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("bom text")...)

	text, name, err := handler.Decode(input)

	require.NoError(t, err)
	assert.Equal(t, "utf-8", name)
	assert.Equal(t, "bom text", text, "BOM should be stripped")
}

func TestDecode_UTF16LE_WithBOM(t *testing.T) {
	handler := encoding.NewCharsetHandler("")
	originalText := "Hello, UTF-16LE!"
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	input := append([]byte{0xFF, 0xFE}, encodeBytes(t, originalText, encoder)...)

	text, name, err := handler.Decode(input)

	require.NoError(t, err)
	assert.Equal(t, "utf-16le", name)
	assert.Equal(t, originalText, text)
}

func TestDecode_UTF16BE_WithBOM(t *testing.T) {
	handler := encoding.NewCharsetHandler("")
	originalText := "Hello, UTF-16BE!"
	encoder := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	input := append([]byte{0xFE, 0xFF}, encodeBytes(t, originalText, encoder)...)

	text, name, err := handler.Decode(input)

	require.NoError(t, err)
	assert.Equal(t, "utf-16be", name)
	assert.Equal(t, originalText, text)
}

func TestDecode_InvalidUTF8_Dropped(t *testing.T) {
	handler := encoding.NewCharsetHandler("")
	input := []byte("Valid start \xFF Invalid sequence \xFE end.")

	text, name, err := handler.Decode(input)

	require.NoError(t, err, "Malformed sequences should be recovered, not reported")
	assert.Equal(t, "utf-8", name)
	assert.Equal(t, "Valid start  Invalid sequence  end.", text)
}

func TestDecode_DefaultEncodingFallback(t *testing.T) {
	originalText := "Héllo, Lätin-1!"
	input := encodeBytes(t, originalText, charmap.ISO8859_1.NewEncoder())

	t.Run("With fallback", func(t *testing.T) {
		handler := encoding.NewCharsetHandler("ISO-8859-1")
		text, name, err := handler.Decode(input)
		require.NoError(t, err)
		assert.Contains(t, []string{"iso-8859-1", "windows-1252"}, name)
		assert.Equal(t, originalText, text)
	})

	t.Run("Without fallback", func(t *testing.T) {
		handler := encoding.NewCharsetHandler("")
		text, _, err := handler.Decode(input)
		require.NoError(t, err)
		assert.Equal(t, "Hllo, Ltin-1!", text, "Latin-1 bytes are not valid UTF-8 and get dropped")
	})

	t.Run("Unknown fallback ignored", func(t *testing.T) {
		handler := encoding.NewCharsetHandler("invalid-encoding-name")
		text, name, err := handler.Decode(input)
		require.NoError(t, err)
		assert.Equal(t, "utf-8", name)
		assert.Equal(t, "Hllo, Ltin-1!", text)
	})
}

func TestValidateEncoding(t *testing.T) {
	assert.NoError(t, encoding.ValidateEncoding(""))
	assert.NoError(t, encoding.ValidateEncoding("latin1"))
	assert.NoError(t, encoding.ValidateEncoding("Shift_JIS"))
	assert.Error(t, encoding.ValidateEncoding("invalid-encoding-name"))
}

func TestIsBinary(t *testing.T) {
	handler := encoding.NewCharsetHandler("")

	t.Run("PNG signature", func(t *testing.T) {
		input := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}
		assert.True(t, handler.IsBinary(input))
	})

	t.Run("High null percentage", func(t *testing.T) {
		var buf bytes.Buffer
		buf.WriteString(strings.Repeat("a", 512))
		for i := 0; i < 512; i++ {
			if i%2 == 0 {
				buf.WriteByte(0x00)
			} else {
				buf.WriteByte('b')
			}
		}
		assert.True(t, handler.IsBinary(buf.Bytes()))
	})

	t.Run("Plain text", func(t *testing.T) {
		assert.False(t, handler.IsBinary([]byte("This is a plain text file.")))
		assert.False(t, handler.IsBinary([]byte(`{"key": "value"}`)))
	})

	t.Run("UTF-16 text", func(t *testing.T) {
		encoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
		input := append([]byte{0xFF, 0xFE}, encodeBytes(t, "wide text", encoder)...)
		assert.False(t, handler.IsBinary(input))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.False(t, handler.IsBinary(nil))
	})
}

// --- END OF FINAL REVISED FILE pkg/summarizer/encoding/handler_test.go ---
