// --- START OF FINAL REVISED FILE pkg/summarizer/encoding/handler.go ---
package encoding

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// sniffLen is the number of bytes used by http.DetectContentType
	sniffLen = 512
	// checkLen is a buffer size used for null byte checks.
	checkLen = 1024
	// Null byte threshold percentage to consider content binary.
	nullThreshold = 0.15 // 15%
)

// Byte order marks recognised by Decode.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Handler converts raw file bytes to text and flags content that looks binary.
type Handler interface {
	// Decode converts content to a UTF-8 string with best-effort recovery.
	// A BOM selects UTF-8 or UTF-16; BOM-less content that is valid UTF-8 is
	// used as-is; otherwise the configured default encoding (if any) is applied;
	// otherwise malformed byte sequences are dropped. The returned name is the
	// canonical encoding that was applied.
	Decode(content []byte) (text string, encodingName string, err error)

	// IsBinary checks if the content is likely binary data based on MIME type sniffing
	// (http.DetectContentType on first 512 bytes) and null byte percentage
	// (in first 1024 bytes).
	IsBinary(content []byte) bool
}

// charsetHandler implements Handler using golang.org/x/text and
// golang.org/x/net/html/charset.
type charsetHandler struct {
	defaultEncoding string
}

// NewCharsetHandler creates a new encoding handler. defaultEncoding may be empty.
func NewCharsetHandler(defaultEncoding string) Handler { // minimal comment
	return &charsetHandler{defaultEncoding: strings.TrimSpace(defaultEncoding)}
}

// ValidateEncoding checks that name is a known encoding label. Empty is valid.
func ValidateEncoding(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if enc, _ := charset.Lookup(name); enc == nil {
		return fmt.Errorf("unknown encoding %q", name)
	}
	return nil
}

// Decode implements the Handler interface.
func (h *charsetHandler) Decode(content []byte) (string, string, error) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return dropInvalid(content[len(bomUTF8):]), "utf-8", nil
	case bytes.HasPrefix(content, bomUTF16LE):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder(), content, "utf-16le")
	case bytes.HasPrefix(content, bomUTF16BE):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder(), content, "utf-16be")
	}

	if utf8.Valid(content) {
		return string(content), "utf-8", nil
	}

	if h.defaultEncoding != "" {
		if enc, name := charset.Lookup(h.defaultEncoding); enc != nil {
			return decodeWith(enc.NewDecoder(), content, name)
		}
		// Unknown default: fall through to lossy UTF-8.
	}

	return dropInvalid(content), "utf-8", nil
}

// decodeWith runs content through the transformer. On failure the lossy UTF-8
// rendering is returned together with the error so callers can still use it.
func decodeWith(t transform.Transformer, content []byte, name string) (string, string, error) {
	out, _, err := transform.Bytes(t, content)
	if err != nil {
		return dropInvalid(content), "utf-8", fmt.Errorf("failed to convert from '%s': %w", name, err)
	}
	return dropInvalid(out), name, nil
}

// dropInvalid removes malformed UTF-8 sequences.
func dropInvalid(b []byte) string {
	return strings.ToValidUTF8(string(b), "")
}

// isMIMETextBased checks if a detected MIME type is likely text-based.
func isMIMETextBased(contentType string) bool { // minimal comment
	mimeType := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	switch mimeType {
	case "application/json", "application/xml", "application/octet-stream":
		// octet-stream may still be text; the null check decides.
		return true
	}
	return strings.HasSuffix(mimeType, "+xml") || strings.HasSuffix(mimeType, "+json")
}

// IsBinary implements the Handler interface.
func (h *charsetHandler) IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	if bytes.HasPrefix(content, bomUTF16LE) || bytes.HasPrefix(content, bomUTF16BE) {
		// UTF-16 text is full of null bytes.
		return false
	}

	sniff := content
	if len(sniff) > sniffLen {
		sniff = sniff[:sniffLen]
	}
	if !isMIMETextBased(http.DetectContentType(sniff)) {
		return true
	}

	check := content
	if len(check) > checkLen {
		check = check[:checkLen]
	}
	nullCount := bytes.Count(check, []byte{0x00})
	return float64(nullCount)/float64(len(check)) > nullThreshold
}

// --- END OF FINAL REVISED FILE pkg/summarizer/encoding/handler.go ---
