package report

import (
	_ "embed" // Required for //go:embed
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/stackvity/folder-summary/pkg/summarizer"
)

//go:embed report.txt.tmpl
var defaultTemplateContent string

// TemplateFuncs are the helper functions available to text report templates.
var TemplateFuncs = template.FuncMap{
	"upper": func(v any) string {
		return strings.ToUpper(fmt.Sprint(v))
	},
	"decimal":  FormatDecimal,
	"fileLine": FileLine,
	"join":     strings.Join,
}

// FormatDecimal prints v the way a size is shown in reports: the shortest
// representation that round-trips, always with a fractional part ("2.0", "1.21").
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FileLine formats one per-file detail line.
func FileLine(rec summarizer.FileRecord) string {
	return fmt.Sprintf("%s (%s) - %s KB, %d words, Keywords: %s",
		rec.Name, rec.Category, FormatDecimal(rec.SizeKB), rec.WordCount, strings.Join(rec.Keywords, ", "))
}

// LoadDefaultTemplate parses the embedded plain-text report template.
func LoadDefaultTemplate() (*template.Template, error) { // minimal comment
	if defaultTemplateContent == "" {
		return nil, fmt.Errorf("embedded default template content is empty (likely missing report.txt.tmpl file)")
	}
	tmpl, err := template.New("report").Funcs(TemplateFuncs).Parse(defaultTemplateContent)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default template: %w", err)
	}
	return tmpl, nil
}

// LoadTemplateFile parses a custom plain-text report template with the
// report helper functions registered.
func LoadTemplateFile(path string) (*template.Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file '%s': %w", path, err)
	}
	tmpl, err := template.New("custom").Funcs(TemplateFuncs).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template file '%s': %w", path, err)
	}
	return tmpl, nil
}

// RenderText executes tmpl (or the embedded default when nil) with s as data.
func RenderText(w io.Writer, s summarizer.FolderSummary, tmpl *template.Template) error {
	if tmpl == nil {
		defaultTmpl, err := LoadDefaultTemplate()
		if err != nil {
			return err
		}
		tmpl = defaultTmpl
	}
	if err := tmpl.Execute(w, s); err != nil {
		return fmt.Errorf("template execution failed for %q: %w", tmpl.Name(), err)
	}
	return nil
}
