// --- START OF FINAL REVISED FILE pkg/summarizer/summarizer.go ---
// Package summarizer scans a single folder, classifies and extracts text from
// each regular file in it, ranks keywords per file and for the whole folder,
// and folds the results into an immutable FolderSummary.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stackvity/folder-summary/pkg/summarizer/encoding"
	"github.com/stackvity/folder-summary/pkg/summarizer/extract"
	"github.com/stackvity/folder-summary/pkg/summarizer/keywords"
)

// Summarizer orchestrates a folder scan.
type Summarizer struct {
	opts             *Options
	logger           *slog.Logger
	hooks            Hooks
	walker           *Walker
	processor        *FileProcessor
	keywordExtractor keywords.KeywordExtractor
}

// NewSummarizer validates opts, fills in default dependencies and returns a
// ready Summarizer. Zero keyword limits fall back to the package defaults;
// negative ones are rejected.
func NewSummarizer(opts Options) (*Summarizer, error) { // minimal comment
	if opts.Logger == nil {
		return nil, fmt.Errorf("%w: Logger implementation (slog.Handler) cannot be nil", ErrConfigValidation)
	}
	if opts.EventHooks == nil {
		opts.EventHooks = &NoOpHooks{}
	}
	logger := slog.New(opts.Logger).With(slog.String("component", "summarizer"))

	if opts.InputPath == "" {
		return nil, fmt.Errorf("%w: input folder cannot be empty", ErrCancelledSelection)
	}
	if opts.FileKeywords < 0 || opts.FolderKeywords < 0 {
		return nil, fmt.Errorf("%w: keyword limits cannot be negative (file=%d, folder=%d)", ErrConfigValidation, opts.FileKeywords, opts.FolderKeywords)
	}
	if opts.MinKeywordLength < 0 {
		return nil, fmt.Errorf("%w: minimum keyword length cannot be negative", ErrConfigValidation)
	}
	if opts.FileKeywords == 0 {
		opts.FileKeywords = DefaultFileKeywords
	}
	if opts.FolderKeywords == 0 {
		opts.FolderKeywords = DefaultFolderKeywords
	}
	if opts.MinKeywordLength == 0 {
		opts.MinKeywordLength = DefaultMinKeywordLength
	}

	if opts.KeywordExtractor == nil {
		if opts.StopWords == nil {
			if opts.StopWordsPath != "" {
				stop, err := keywords.LoadStopWords(opts.StopWordsPath)
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
				}
				opts.StopWords = stop
				logger.Debug("Loaded stop words", slog.String("path", opts.StopWordsPath), slog.Int("count", stop.Len()))
			} else {
				opts.StopWords = keywords.DefaultStopWords()
			}
		}
		opts.KeywordExtractor = keywords.NewExtractor(opts.StopWords, opts.MinKeywordLength)
		logger.Debug("KeywordExtractor not provided, using default frequency extractor.")
	}
	if opts.EncodingHandler == nil {
		if err := encoding.ValidateEncoding(opts.DefaultEncoding); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
		}
		opts.EncodingHandler = encoding.NewCharsetHandler(opts.DefaultEncoding)
	}
	if opts.Extractor == nil {
		opts.Extractor = extract.NewDispatcher(opts.EncodingHandler, opts.Logger)
		logger.Debug("Extractor not provided, using default dispatcher.")
	}

	processorFactory := opts.ProcessorFactory
	if processorFactory == nil {
		processorFactory = NewFileProcessor
	}
	walkerFactory := opts.WalkerFactory
	if walkerFactory == nil {
		walkerFactory = NewWalker
	}

	s := &Summarizer{
		opts:             &opts,
		logger:           logger,
		hooks:            opts.EventHooks,
		keywordExtractor: opts.KeywordExtractor,
	}
	s.walker = walkerFactory(s.opts, opts.Logger)
	s.processor = processorFactory(s.opts, opts.Logger, opts.Extractor, opts.KeywordExtractor)
	return s, nil
}

// Run scans the folder once and returns its summary. Per-file extraction
// failures never abort the run. Cancellation is checked between files; a
// cancelled run returns the context error and no summary.
func (s *Summarizer) Run(ctx context.Context) (FolderSummary, error) {
	start := time.Now()
	s.logger.Debug("Starting folder summary", slog.String("path", s.opts.InputPath))

	entries, err := s.walker.List(ctx)
	if err != nil {
		return FolderSummary{}, err
	}

	builder := newSummaryBuilder(s.opts.InputPath, len(entries))
	failed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			s.logger.Info("Folder summary cancelled", slog.String("reason", err.Error()), slog.Int("processed", builder.len()))
			return FolderSummary{}, err
		}
		result, _, procErr := s.processor.ProcessFile(ctx, entry)
		if procErr != nil {
			if !errors.Is(procErr, ErrExtractionFailed) {
				return FolderSummary{}, procErr
			}
			failed++
		}
		builder.add(result)
	}

	summary := builder.build(s.keywordExtractor.Extract(builder.aggregateText(), s.opts.FolderKeywords))

	s.logger.Debug("Folder summary finished",
		slog.Int("files", summary.TotalFiles()),
		slog.Int("extractionFailures", failed),
		slog.Int64("totalBytes", summary.TotalSizeBytes),
		slog.Duration("duration", time.Since(start)),
	)
	if hookErr := s.hooks.OnRunComplete(summary); hookErr != nil {
		s.logger.Warn("Error reported by OnRunComplete hook", slog.String("hookError", hookErr.Error()))
	}
	return summary, nil
}

// SummarizeFolder is the main entry point for the core library. It builds a
// Summarizer from opts and runs it once.
func SummarizeFolder(ctx context.Context, opts Options) (FolderSummary, error) {
	s, err := NewSummarizer(opts)
	if err != nil {
		return FolderSummary{}, err
	}
	return s.Run(ctx)
}

// --- END OF FINAL REVISED FILE pkg/summarizer/summarizer.go ---
