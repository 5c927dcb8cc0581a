// Package cli wires the summarizer library to the terminal: it picks the
// presentation mode, runs the scan, writes the report and prints the run
// summary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/stackvity/folder-summary/internal/cli/hooks"
	"github.com/stackvity/folder-summary/internal/cli/ui"
	"github.com/stackvity/folder-summary/pkg/summarizer"
	"github.com/stackvity/folder-summary/pkg/summarizer/report"
)

var _ hooks.ProgressBar = (*progressbar.ProgressBar)(nil)

// Presentation modes.
type mode int

const (
	modePlain    mode = iota // errors-only logging
	modeVerbose              // one log line per file
	modeProgress             // progress bar on stderr
	modeTUI                  // Bubble Tea interface on stderr
)

func (m mode) String() string {
	switch m {
	case modeVerbose:
		return "verbose"
	case modeProgress:
		return "progress"
	case modeTUI:
		return "tui"
	default:
		return "plain"
	}
}

// Terminal and stream seams, replaced in tests.
var (
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	isTerminal           = func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }
)

// selectMode decides how progress is shown. Verbose wins over everything;
// the TUI and the progress bar need stderr to be a terminal.
func selectMode(opts summarizer.Options, tty bool) mode {
	switch {
	case opts.Verbose:
		return modeVerbose
	case !tty:
		return modePlain
	case opts.TuiEnabled:
		return modeTUI
	default:
		return modeProgress
	}
}

// Run orchestrates one summary run after configuration loading: it scans the
// folder, writes the report to opts.OutputPath and prints the run summary to
// stdout. A cancelled selection is not an error.
func Run(ctx context.Context, opts summarizer.Options, logger *slog.Logger) error {
	m := selectMode(opts, isTerminal())
	logger.Debug("Selected presentation mode",
		slog.String("input", opts.InputPath),
		slog.String("output", opts.OutputPath),
		slog.String("mode", m.String()),
	)

	var (
		summary summarizer.FolderSummary
		err     error
	)
	if m == modeTUI {
		summary, err = runWithTUI(ctx, opts, logger)
	} else {
		summary, err = runHeadless(ctx, opts, logger, m)
	}
	if err != nil {
		if errors.Is(err, summarizer.ErrCancelledSelection) {
			logger.Info("No folder or output file selected, nothing to do")
			return nil
		}
		logger.Error("Folder summary failed", slog.Any("error", err))
		return err
	}

	logger.Debug("Summary saved", slog.String("path", opts.OutputPath), slog.Int("files", summary.TotalFiles()))
	return PrintSummary(stdout, opts.OutputFormat, summary, opts.OutputPath)
}

// summarizeAndWrite performs the scan and stores the report.
func summarizeAndWrite(ctx context.Context, opts summarizer.Options) (summarizer.FolderSummary, error) {
	summary, err := summarizer.SummarizeFolder(ctx, opts)
	if err != nil {
		return summarizer.FolderSummary{}, err
	}
	if err := report.Write(opts.OutputPath, summary, report.Options{Template: opts.Template, Logger: opts.Logger}); err != nil {
		return summarizer.FolderSummary{}, err
	}
	return summary, nil
}

// runHeadless runs the scan on the calling goroutine with log or progress-bar feedback.
func runHeadless(ctx context.Context, opts summarizer.Options, logger *slog.Logger, m mode) (summarizer.FolderSummary, error) {
	var bar hooks.ProgressBar
	if m == modeProgress {
		bar = newProgressBar(stderr)
	}
	cliHooks := hooks.NewCLIHooks(logger, false, m == modeVerbose, nil, bar)
	cliHooks.SetBarOutput(stderr)
	opts.EventHooks = cliHooks
	return summarizeAndWrite(ctx, opts)
}

// newProgressBar creates an open-ended bar; the file count is unknown until
// the listing finishes inside the run.
func newProgressBar(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Summarizing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}

type runResult struct {
	summary summarizer.FolderSummary
	err     error
}

// runWithTUI runs the scan on a goroutine while the Bubble Tea program renders
// progress. Quitting the TUI cancels the scan.
func runWithTUI(ctx context.Context, opts summarizer.Options, logger *slog.Logger) (summarizer.FolderSummary, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := ui.NewModel(opts.AppVersion)
	prog := tea.NewProgram(&model, tea.WithOutput(stderr), tea.WithContext(runCtx))
	opts.EventHooks = hooks.NewCLIHooks(logger, true, false, prog, nil)

	done := make(chan runResult, 1)
	go func() {
		summary, err := summarizeAndWrite(runCtx, opts)
		if err != nil {
			prog.Send(hooks.RunFailedMsg{Err: err})
		} else {
			prog.Send(hooks.ReportSavedMsg{Path: opts.OutputPath})
		}
		done <- runResult{summary: summary, err: err}
	}()

	_, tuiErr := prog.Run()
	cancel()
	res := <-done

	if tuiErr != nil && !errors.Is(tuiErr, tea.ErrProgramKilled) {
		logger.Warn("Terminal UI exited with an error", slog.Any("error", tuiErr))
	}
	if res.err != nil {
		if errors.Is(res.err, context.Canceled) {
			return summarizer.FolderSummary{}, fmt.Errorf("run cancelled before the report was written: %w", res.err)
		}
		return summarizer.FolderSummary{}, res.err
	}
	return res.summary, nil
}
