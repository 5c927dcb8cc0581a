// --- START OF FINAL REVISED FILE pkg/summarizer/options.go ---
package summarizer

import (
	"log/slog"
	"text/template"
	"time"

	"github.com/stackvity/folder-summary/pkg/summarizer/encoding"
	"github.com/stackvity/folder-summary/pkg/summarizer/extract"
	"github.com/stackvity/folder-summary/pkg/summarizer/keywords"
)

// Hooks defines callbacks for status updates during a folder scan.
// Files are processed sequentially, but implementations should still be safe
// to call from a goroutine other than the one that created them.
type Hooks interface {
	OnFileDiscovered(name string) error
	OnFileStatusUpdate(name string, status Status, message string, duration time.Duration) error
	OnRunComplete(summary FolderSummary) error
}

// NoOpHooks provides a default, do-nothing implementation of the Hooks interface.
type NoOpHooks struct{}

// OnFileDiscovered implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnFileDiscovered(name string) error { return nil }

// OnFileStatusUpdate implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnFileStatusUpdate(name string, status Status, message string, duration time.Duration) error { // minimal comment
	return nil
}

// OnRunComplete implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnRunComplete(summary FolderSummary) error { return nil }

// Options holds all configuration for a folder summary run. Fields tagged with
// mapstructure are populated from Viper; the rest are injected by the caller.
type Options struct {
	// --- Paths ---
	InputPath      string `mapstructure:"input"`
	OutputPath     string `mapstructure:"output"`
	ConfigFilePath string `mapstructure:"-"`
	ProfileName    string `mapstructure:"-"`
	AppVersion     string `mapstructure:"-"`

	// --- Keywords ---
	FileKeywords     int    `mapstructure:"fileKeywords"`
	FolderKeywords   int    `mapstructure:"folderKeywords"`
	MinKeywordLength int    `mapstructure:"minKeywordLength"`
	StopWordsPath    string `mapstructure:"stopWords"`

	// --- Decoding ---
	DefaultEncoding string `mapstructure:"defaultEncoding"`

	// --- Presentation ---
	Verbose      bool               `mapstructure:"verbose"`
	TuiEnabled   bool               `mapstructure:"tui"`
	OutputFormat OutputFormat       `mapstructure:"outputFormat"`
	TemplatePath string             `mapstructure:"template"`
	Template     *template.Template `mapstructure:"-"`
	LogFile      string             `mapstructure:"logFile"`

	// --- Injected dependencies ---
	Logger           slog.Handler              `mapstructure:"-"`
	EventHooks       Hooks                     `mapstructure:"-"`
	StopWords        keywords.StopWords        `mapstructure:"-"`
	Extractor        extract.Extractor         `mapstructure:"-"`
	KeywordExtractor keywords.KeywordExtractor `mapstructure:"-"`
	EncodingHandler  encoding.Handler          `mapstructure:"-"`
	ProcessorFactory ProcessorFactory          `mapstructure:"-"`
	WalkerFactory    WalkerFactory             `mapstructure:"-"`
}

// --- END OF FINAL REVISED FILE pkg/summarizer/options.go ---
