// --- START OF NEW FILE pkg/summarizer/report/report.go ---
// Package report renders a summarizer.FolderSummary as a plain-text, Word or
// PDF document. The output format is chosen from the destination extension.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/stackvity/folder-summary/pkg/summarizer"
)

// ErrWriteFailed indicates that the report destination could not be created
// or written. Partially written files are left in place.
var ErrWriteFailed = errors.New("failed to write report")

// Format identifies a report rendering.
type Format string

const (
	FormatText Format = "text"
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
)

// Options configures report rendering.
type Options struct {
	// Template overrides the embedded plain-text template. It is ignored by
	// the docx and pdf renderings.
	Template *template.Template
	// Logger receives a warning when the pdf rendering has to drop characters.
	// Nil disables the warning.
	Logger slog.Handler
}

// FormatForPath selects the rendering from the (case-insensitive) extension
// of path. Anything that is not .txt or .pdf is written as a Word document.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FormatText
	case ".pdf":
		return FormatPDF
	default:
		return FormatDocx
	}
}

// Render writes the report for s to w in the given format.
func Render(w io.Writer, format Format, s summarizer.FolderSummary, opts Options) error {
	switch format {
	case FormatText:
		return RenderText(w, s, opts.Template)
	case FormatPDF:
		blocks := Blocks(s)
		if missing := UnencodableRunes(blocks); len(missing) > 0 && opts.Logger != nil {
			slog.New(opts.Logger).Warn("PDF report omits characters outside cp1252; use a .docx or .txt output to keep them",
				slog.String("characters", string(missing)))
		}
		return RenderPDF(w, blocks)
	case FormatDocx:
		return RenderDocx(w, Blocks(s))
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Write renders the report for s and stores it at path, replacing any existing
// file. The document is rendered in memory first so a template or encoding
// failure does not leave an empty file behind.
func Write(path string, s summarizer.FolderSummary, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, FormatForPath(path), s, opts); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrWriteFailed, path, err)
	}
	return nil
}

// --- END OF NEW FILE pkg/summarizer/report/report.go ---
