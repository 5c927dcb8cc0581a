// --- START OF FINAL REVISED FILE pkg/summarizer/constants.go ---
package summarizer

import "github.com/stackvity/folder-summary/pkg/summarizer/keywords"

// Constants defining default values for various configuration options.
// These are used when setting up Viper defaults in the configuration loading process.
const (
	// DefaultFileKeywords is the number of keywords kept per file.
	DefaultFileKeywords = 5
	// DefaultFolderKeywords is the number of keywords kept for the whole folder.
	DefaultFolderKeywords = 10
	// DefaultMinKeywordLength is the shortest token, in runes, ranked as a keyword.
	DefaultMinKeywordLength = keywords.DefaultMinLength
	// DefaultTuiEnabled is the default state for the Terminal UI.
	DefaultTuiEnabled = true
	// DefaultOutputFormat is the default format for the console run summary.
	DefaultOutputFormat = OutputFormatText
	// DefaultVerbose is the default state for verbose logging.
	DefaultVerbose = false
	// DefaultReportExtension is appended to an output path that has no extension.
	DefaultReportExtension = ".docx"
)

// Units used when reporting sizes.
const (
	BytesPerKB = 1024
	BytesPerMB = 1024 * 1024
)

// --- END OF FINAL REVISED FILE pkg/summarizer/constants.go ---
