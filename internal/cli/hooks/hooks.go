// --- START OF FINAL REVISED FILE internal/cli/hooks/hooks.go ---
package hooks

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stackvity/folder-summary/pkg/summarizer"
)

// --- TUI Message Structs ---

// FileDiscoveredMsg signals that a file was found in the scanned folder.
type FileDiscoveredMsg struct{ Name string }

// FileStatusUpdateMsg signals a change in a file's processing status.
type FileStatusUpdateMsg struct {
	Name     string
	Status   summarizer.Status
	Message  string
	Duration time.Duration
}

// RunCompleteMsg signals that the folder scan finished.
type RunCompleteMsg struct{ Summary summarizer.FolderSummary }

// ReportSavedMsg signals that the report was written to Path.
type ReportSavedMsg struct{ Path string }

// RunFailedMsg signals that the run stopped on a fatal error.
type RunFailedMsg struct{ Err error }

// --- Hook Implementation ---

// CLIHooks implements the summarizer.Hooks interface, bridging library events
// to the CLI's UI layer (TUI, Logger, Progress Bar).
type CLIHooks struct {
	logger         *slog.Logger
	tuiEnabled     bool
	verboseEnabled bool
	tuiProgram     TUIProgram
	progressBar    ProgressBar
	barOut         io.Writer
	mu             sync.Mutex // Protects progressBar
}

// TUIProgram defines the interface needed to interact with the Bubble Tea program.
type TUIProgram interface {
	Send(msg tea.Msg)
}

// ProgressBar defines the interface needed to interact with the progress bar.
type ProgressBar interface {
	Add(num int) error
	Describe(description string)
	Close() error
}

var _ TUIProgram = (*tea.Program)(nil)

// --- No-Op Implementations for Decoupling ---

// NoOpTUIProgram provides a default null implementation.
type NoOpTUIProgram struct{}

// Send implements TUIProgram.
func (n *NoOpTUIProgram) Send(msg tea.Msg) {}

// --- Constructor ---

// NewCLIHooks creates a new CLIHooks instance.
// Pass nil for tuiProgram or progressBar if not applicable. A nil progressBar
// means plain logging mode, where only failures are reported.
func NewCLIHooks(logger *slog.Logger, tuiEnabled, verboseEnabled bool, tuiProg TUIProgram, progBar ProgressBar) *CLIHooks {
	if tuiProg == nil {
		tuiProg = &NoOpTUIProgram{}
	}
	return &CLIHooks{
		logger:         logger,
		tuiEnabled:     tuiEnabled,
		verboseEnabled: verboseEnabled,
		tuiProgram:     tuiProg,
		progressBar:    progBar,
		barOut:         os.Stderr,
	}
}

// SetBarOutput sets where the line ending a finished progress bar is written.
func (h *CLIHooks) SetBarOutput(w io.Writer) {
	if w != nil {
		h.barOut = w
	}
}

// --- Interface Method Implementations ---

// OnFileDiscovered handles the event when a file is found in the folder.
func (h *CLIHooks) OnFileDiscovered(name string) error {
	if h.tuiEnabled {
		h.tuiProgram.Send(FileDiscoveredMsg{Name: name})
	} else if h.verboseEnabled {
		h.logger.Debug("File discovered", "file", name)
	}
	return nil // Library ignores hook errors
}

// OnFileStatusUpdate handles events when a file's processing status changes.
func (h *CLIHooks) OnFileStatusUpdate(name string, status summarizer.Status, message string, duration time.Duration) error {
	if h.tuiEnabled {
		h.tuiProgram.Send(FileStatusUpdateMsg{
			Name:     name,
			Status:   status,
			Message:  message,
			Duration: duration,
		})
		return nil
	}

	if h.verboseEnabled {
		logLevel := slog.LevelDebug
		logMsg := "File status updated"
		attrs := []any{
			slog.String("file", name),
			slog.String("status", string(status)),
		}
		if duration > 0 {
			attrs = append(attrs, slog.Duration("duration", duration))
		}
		if message != "" {
			logKey := "message"
			if status == summarizer.StatusFailed {
				logKey = "error"
			}
			attrs = append(attrs, slog.String(logKey, message))
		}

		switch status {
		case summarizer.StatusSuccess, summarizer.StatusSkipped:
			logLevel = slog.LevelInfo
		case summarizer.StatusFailed:
			logLevel = slog.LevelError
			logMsg = "File extraction failed"
		}
		h.logger.Log(nil, logLevel, logMsg, attrs...)
		return nil
	}

	if h.progressBar != nil {
		h.mu.Lock()
		defer h.mu.Unlock()
		if isFinalStatus(status) {
			h.progressBar.Describe(name)
			_ = h.progressBar.Add(1)
		}
		return nil
	}

	// Plain mode: only failures are worth a line, and the processor already
	// logged them with full context.
	return nil
}

// OnRunComplete handles the event when the folder scan finishes.
// It forwards the summary to the TUI or finalizes the progress bar.
func (h *CLIHooks) OnRunComplete(summary summarizer.FolderSummary) error {
	if h.tuiEnabled {
		h.tuiProgram.Send(RunCompleteMsg{Summary: summary})
		return nil
	}
	if h.progressBar != nil {
		h.mu.Lock()
		_ = h.progressBar.Close()
		h.mu.Unlock()
		// Keep the shell prompt off the finished bar.
		_, _ = fmt.Fprintln(h.barOut)
	}
	return nil
}

func isFinalStatus(status summarizer.Status) bool {
	return status == summarizer.StatusSuccess ||
		status == summarizer.StatusFailed ||
		status == summarizer.StatusSkipped
}

// --- END OF FINAL REVISED FILE internal/cli/hooks/hooks.go ---
