// --- START OF FINAL REVISED FILE pkg/summarizer/processor.go ---
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stackvity/folder-summary/pkg/summarizer/classify"
	"github.com/stackvity/folder-summary/pkg/summarizer/extract"
	"github.com/stackvity/folder-summary/pkg/summarizer/keywords"
)

// FileResult is the outcome of processing one file. Text is the extracted
// text and is empty for files without a decoder or whose extraction failed.
type FileResult struct {
	Record FileRecord
	Text   string
}

// ProcessorFactory defines a function type for creating FileProcessors.
type ProcessorFactory func(
	opts *Options,
	loggerHandler slog.Handler,
	extractor extract.Extractor,
	keywordExtractor keywords.KeywordExtractor,
) *FileProcessor

// FileProcessor classifies a single file, extracts its text and ranks its keywords.
type FileProcessor struct {
	opts             *Options
	logger           *slog.Logger
	hooks            Hooks
	extractor        extract.Extractor
	keywordExtractor keywords.KeywordExtractor
}

// NewFileProcessor creates a new FileProcessor instance.
func NewFileProcessor(
	opts *Options,
	loggerHandler slog.Handler,
	extractor extract.Extractor,
	keywordExtractor keywords.KeywordExtractor,
) *FileProcessor {
	hooks := opts.EventHooks
	if hooks == nil {
		hooks = &NoOpHooks{}
	}
	return &FileProcessor{
		opts:             opts,
		logger:           slog.New(loggerHandler).With(slog.String("component", "processor")),
		hooks:            hooks,
		extractor:        extractor,
		keywordExtractor: keywordExtractor,
	}
}

// ProcessFile builds the record for entry. Extraction failures are logged and
// returned wrapped in ErrExtractionFailed, but the returned FileResult is
// always usable: the file is counted with zero words and no keywords.
func (p *FileProcessor) ProcessFile(ctx context.Context, entry FileEntry) (FileResult, Status, error) {
	start := time.Now()
	p.updateStatus(entry.Name, StatusProcessing, "", 0)

	category := classify.Classify(entry.Name)
	kind := category.Kind()
	logger := p.logger.With(slog.String("file", entry.Name), slog.String("category", string(category)))

	if !kind.HasText() {
		logger.Debug("No text decoder for file kind", slog.String("kind", kind.String()))
		result := FileResult{Record: NewFileRecord(entry.Name, category, entry.Size, 0, nil)}
		p.updateStatus(entry.Name, StatusSkipped, "no text extracted for "+kind.String(), time.Since(start))
		return result, StatusSkipped, nil
	}

	text, err := p.extractor.Extract(entry.Path, kind)
	if err != nil {
		logger.Error("Error reading file", slog.String("error", err.Error()))
		result := FileResult{Record: NewFileRecord(entry.Name, category, entry.Size, 0, nil)}
		p.updateStatus(entry.Name, StatusFailed, err.Error(), time.Since(start))
		return result, StatusFailed, fmt.Errorf("%w: '%s': %w", ErrExtractionFailed, entry.Name, err)
	}

	wordCount := keywords.CountWords(text)
	fileKeywords := p.keywordExtractor.Extract(text, p.opts.FileKeywords)
	result := FileResult{
		Record: NewFileRecord(entry.Name, category, entry.Size, wordCount, fileKeywords),
		Text:   text,
	}

	duration := time.Since(start)
	logger.Debug("File processed", slog.Int("words", wordCount), slog.Duration("duration", duration))
	p.updateStatus(entry.Name, StatusSuccess, fmt.Sprintf("%d words", wordCount), duration)
	return result, StatusSuccess, nil
}

func (p *FileProcessor) updateStatus(name string, status Status, message string, duration time.Duration) {
	if hookErr := p.hooks.OnFileStatusUpdate(name, status, message, duration); hookErr != nil {
		p.logger.Warn("Error reported by OnFileStatusUpdate hook", slog.String("file", name), slog.String("hookError", hookErr.Error()))
	}
}

// --- END OF FINAL REVISED FILE pkg/summarizer/processor.go ---
