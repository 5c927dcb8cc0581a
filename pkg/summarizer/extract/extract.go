// --- START OF NEW FILE pkg/summarizer/extract/extract.go ---
// Package extract obtains plain text from the document formats the summarizer
// understands. Each classify.Kind that carries text has exactly one decoder.
package extract

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/stackvity/folder-summary/pkg/summarizer/classify"
	"github.com/stackvity/folder-summary/pkg/summarizer/encoding"
)

// ErrUnsupportedKind is returned when text extraction is requested for a kind
// that has no decoder (images and unknown files).
var ErrUnsupportedKind = errors.New("no text decoder for file kind")

// Extractor defines the interface for obtaining the plain text of a file.
//
// Stability: Public Stable API - Implementations can be provided externally.
type Extractor interface {
	// Extract returns the text of the file at path, decoded according to kind.
	// Errors describe why the file could not be decoded; callers decide whether
	// they are fatal.
	Extract(path string, kind classify.Kind) (string, error)
}

// DecodeFunc decodes one file into text.
type DecodeFunc func(path string) (string, error)

// Dispatcher is the default Extractor. It routes each kind to its decoder.
type Dispatcher struct {
	decoders map[classify.Kind]DecodeFunc
	enc      encoding.Handler
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher with the built-in PDF, DOCX and text
// decoders. enc decodes plain-text files; nil uses a handler without a
// default encoding.
func NewDispatcher(enc encoding.Handler, loggerHandler slog.Handler) *Dispatcher { // minimal comment
	if enc == nil {
		enc = encoding.NewCharsetHandler("")
	}
	if loggerHandler == nil {
		loggerHandler = slog.NewTextHandler(io.Discard, nil)
	}
	d := &Dispatcher{
		enc:    enc,
		logger: slog.New(loggerHandler).With(slog.String("component", "extractor")),
	}
	d.decoders = map[classify.Kind]DecodeFunc{
		classify.KindPDF:  ExtractPDF,
		classify.KindDocx: ExtractDocx,
		classify.KindText: d.extractText,
	}
	return d
}

// Extract implements the Extractor interface.
func (d *Dispatcher) Extract(path string, kind classify.Kind) (string, error) {
	decode, ok := d.decoders[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	return decode(path)
}

// extractText reads the whole file and decodes it with the dispatcher's handler.
// Content that looks binary is still decoded; only a warning is logged.
func (d *Dispatcher) extractText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	if d.enc.IsBinary(content) {
		d.logger.Warn("Text file appears to contain binary data", slog.String("path", path))
	}
	text, name, err := d.enc.Decode(content)
	if err != nil {
		return "", fmt.Errorf("decode text file: %w", err)
	}
	d.logger.Debug("Decoded text file", slog.String("path", path), slog.String("encoding", name))
	return text, nil
}

// --- END OF NEW FILE pkg/summarizer/extract/extract.go ---
