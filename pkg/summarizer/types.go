// --- START OF FINAL REVISED FILE pkg/summarizer/types.go ---
package summarizer

// Status defines the possible processing states of a file during a scan.
type Status string

// Constants representing the defined file processing statuses.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusSkipped    Status = "skipped"
)

// OutputFormat defines the format of the run summary printed to standard output.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// --- END OF FINAL REVISED FILE pkg/summarizer/types.go ---
