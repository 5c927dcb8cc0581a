// --- START OF FINAL REVISED FILE pkg/summarizer/errors.go ---
package summarizer

import "errors"

// --- Exported Error Variables ---
// Library users can check against these using errors.Is.

var (
	// ErrExtractionFailed indicates that the text of a single file could not be
	// decoded or parsed. It is never fatal: the file is still counted with empty
	// text and the scan continues.
	ErrExtractionFailed = errors.New("failed to extract text")

	// ErrCancelledSelection indicates that no folder or no output path was
	// chosen. Callers should report it as a notice and exit cleanly without
	// writing a report.
	ErrCancelledSelection = errors.New("no folder or output path selected")

	// ErrListFailed indicates that the target folder could not be read.
	// Returned wrapped by Run; fatal for the run.
	ErrListFailed = errors.New("failed to list folder")

	// ErrConfigValidation indicates that the provided Options failed validation
	// checks performed by NewSummarizer (e.g., missing paths, negative limits).
	ErrConfigValidation = errors.New("invalid configuration options provided")
)

// --- END OF FINAL REVISED FILE pkg/summarizer/errors.go ---
