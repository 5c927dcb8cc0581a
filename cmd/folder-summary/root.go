// --- START OF FINAL REVISED FILE cmd/folder-summary/root.go ---
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackvity/folder-summary/internal/cli"
	"github.com/stackvity/folder-summary/internal/cli/config"
	"github.com/stackvity/folder-summary/pkg/summarizer"
)

var (
	// These are set during build time using -ldflags
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// newRootCmd builds the folder-summary command with all of its flags.
func newRootCmd() *cobra.Command {
	var (
		cfgFile     string
		profileName string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "folder-summary [folder] [output]",
		Short: "Summarizes the files of a folder into a text, Word or PDF report.",
		Long: `folder-summary scans the files directly inside a folder, extracts the text
of PDF, DOCX and plain-text files, and writes a report with:
  - the total file count and size,
  - a breakdown by file type,
  - the most frequent keywords of the folder,
  - per-file size, word count and keywords.

The report format follows the output extension: .txt for plain text, .pdf for
PDF, anything else for a Word document (.docx is appended when there is no
extension).`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error { // minimal comment
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			opts, cliOpts, logger, err := config.LoadAndValidate(cfgFile, profileName, version, verbose, cmd.Flags(), args)
			defer func() {
				_ = cliOpts.Close()
			}()
			if err != nil {
				if errors.Is(err, summarizer.ErrCancelledSelection) {
					logger.Info("No folder or output file selected, nothing to do", "reason", err.Error())
					return nil
				}
				return err
			}
			return cli.Run(ctx, opts, logger)
		},
	}
	cmd.SetVersionTemplate(`{{.Use}} version {{.Version}}` + "\n")

	// Persistent flags
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default is search standard locations like ., $HOME/.config/folder-summary/)")
	cmd.PersistentFlags().StringVar(&profileName, "profile", "", "Name of configuration profile to use")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging output (disables TUI)")
	cmd.PersistentFlags().StringP("input", "i", "", "Folder to summarize (alternative to the [folder] argument)")
	cmd.PersistentFlags().StringP("output", "o", "", "Report file (alternative to the [output] argument)")

	// Presentation flags
	cmd.Flags().Bool("no-tui", false, "Disable interactive Terminal UI even if in a TTY")
	cmd.Flags().String("output-format", string(summarizer.DefaultOutputFormat), `Console run summary format ("text", "json", "yaml")`)
	cmd.Flags().String("template", "", "Path to a custom Go template for .txt reports")
	cmd.Flags().String("log-file", "", "Also write JSON logs to this rotating file")

	// Keyword flags
	cmd.Flags().String("stop-words", "", "Stop-word file (.txt one word per line, .yaml or .toml)")
	cmd.Flags().Int("file-keywords", summarizer.DefaultFileKeywords, "Keywords listed per file")
	cmd.Flags().Int("folder-keywords", summarizer.DefaultFolderKeywords, "Keywords listed for the whole folder")
	cmd.Flags().Int("min-keyword-length", summarizer.DefaultMinKeywordLength, "Shortest word, in characters, counted as a keyword")

	// Decoding flags
	cmd.Flags().String("default-encoding", "", "Encoding assumed for text files without a BOM or detectable charset (e.g. windows-1252)")
	return cmd
}

var rootCmd = newRootCmd()

// Execute runs the root command and exits non-zero on failure.
func Execute() { // minimal comment
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// --- END OF FINAL REVISED FILE cmd/folder-summary/root.go ---
