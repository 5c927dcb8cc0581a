package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stackvity/folder-summary/pkg/summarizer"
	"github.com/stackvity/folder-summary/pkg/summarizer/classify"
	"github.com/stackvity/folder-summary/pkg/summarizer/report"
)

// consoleSummary is the machine-readable run summary printed to stdout.
type consoleSummary struct {
	summarizer.FolderSummary `yaml:",inline"`
	TotalFiles               int     `json:"totalFiles" yaml:"totalFiles"`
	TotalSizeMB              float64 `json:"totalSizeMB" yaml:"totalSizeMB"`
	ReportPath               string  `json:"reportPath" yaml:"reportPath"`
}

// consoleCategories is the fixed order of the category line in text output.
var consoleCategories = []classify.Category{
	classify.CategoryPDF,
	classify.CategoryDocx,
	classify.CategoryTxt,
	classify.CategoryJPG,
	classify.CategoryJPEG,
	classify.CategoryPNG,
	classify.CategoryOther,
}

// PrintSummary writes the run summary to w in the requested format. The text
// format ends with the "Summary saved to" line; json and yaml carry the
// report path as a field.
func PrintSummary(w io.Writer, format summarizer.OutputFormat, s summarizer.FolderSummary, reportPath string) error {
	switch format {
	case summarizer.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newConsoleSummary(s, reportPath)); err != nil {
			return fmt.Errorf("failed to encode JSON summary: %w", err)
		}
		return nil
	case summarizer.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newConsoleSummary(s, reportPath)); err != nil {
			return fmt.Errorf("failed to encode YAML summary: %w", err)
		}
		return enc.Close()
	default:
		return printText(w, s, reportPath)
	}
}

func newConsoleSummary(s summarizer.FolderSummary, reportPath string) consoleSummary {
	return consoleSummary{
		FolderSummary: s,
		TotalFiles:    s.TotalFiles(),
		TotalSizeMB:   s.TotalSizeMB(),
		ReportPath:    reportPath,
	}
}

func printText(w io.Writer, s summarizer.FolderSummary, reportPath string) error {
	counts := make([]string, 0, len(consoleCategories))
	for _, c := range consoleCategories {
		counts = append(counts, fmt.Sprintf("%s: %d", c, s.Count(c)))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Folder: %s\n", s.FolderPath)
	fmt.Fprintf(&b, "Files: %d (%s MB)\n", s.TotalFiles(), report.FormatDecimal(s.TotalSizeMB()))
	fmt.Fprintf(&b, "Categories: %s\n", strings.Join(counts, ", "))
	fmt.Fprintf(&b, "Top keywords: %s\n", strings.Join(s.TopKeywords, ", "))
	if reportPath != "" {
		fmt.Fprintf(&b, "Summary saved to %s\n", reportPath)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
