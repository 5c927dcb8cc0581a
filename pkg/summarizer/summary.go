// --- START OF NEW FILE pkg/summarizer/summary.go ---
package summarizer

import (
	"strconv"
	"strings"

	"github.com/stackvity/folder-summary/pkg/summarizer/classify"
)

// FileRecord holds the per-file facts gathered during a scan.
type FileRecord struct {
	Name      string            `json:"name" yaml:"name"`
	Category  classify.Category `json:"category" yaml:"category"`
	SizeBytes int64             `json:"sizeBytes" yaml:"sizeBytes"`
	// SizeKB is SizeBytes / 1024 rounded to two decimals.
	SizeKB    float64  `json:"sizeKB" yaml:"sizeKB"`
	WordCount int      `json:"wordCount" yaml:"wordCount"`
	Keywords  []string `json:"keywords" yaml:"keywords"`
}

// CategoryCount is one entry of the per-category breakdown.
type CategoryCount struct {
	Category classify.Category `json:"category" yaml:"category"`
	Count    int               `json:"count" yaml:"count"`
}

// FolderSummary is the immutable result of scanning a folder. Category counts
// are ordered by first appearance and file records follow listing order.
type FolderSummary struct {
	FolderPath     string          `json:"folderPath" yaml:"folderPath"`
	TotalSizeBytes int64           `json:"totalSizeBytes" yaml:"totalSizeBytes"`
	CategoryCounts []CategoryCount `json:"categoryCounts" yaml:"categoryCounts"`
	TopKeywords    []string        `json:"topKeywords" yaml:"topKeywords"`
	Files          []FileRecord    `json:"files" yaml:"files"`
}

// TotalFiles returns the number of files included in the summary.
func (s FolderSummary) TotalFiles() int { return len(s.Files) }

// TotalSizeMB returns the total size in megabytes rounded to two decimals.
func (s FolderSummary) TotalSizeMB() float64 {
	return Round2(float64(s.TotalSizeBytes) / BytesPerMB)
}

// Count returns the number of files in category c, or 0 if none were seen.
func (s FolderSummary) Count(c classify.Category) int {
	for _, cc := range s.CategoryCounts {
		if cc.Category == c {
			return cc.Count
		}
	}
	return 0
}

// Round2 rounds the exact binary value of v to two decimal places, ties to
// even, so 0.125 becomes 0.12 and 0.375 becomes 0.38.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// NewFileRecord builds a record, deriving SizeKB from the byte size.
// A nil keyword slice is normalised to an empty one.
func NewFileRecord(name string, category classify.Category, sizeBytes int64, wordCount int, kws []string) FileRecord {
	if kws == nil {
		kws = []string{}
	}
	return FileRecord{
		Name:      name,
		Category:  category,
		SizeBytes: sizeBytes,
		SizeKB:    Round2(float64(sizeBytes) / BytesPerKB),
		WordCount: wordCount,
		Keywords:  kws,
	}
}

// summaryBuilder folds file results into a FolderSummary. It is local to a
// single run and is discarded once build is called.
type summaryBuilder struct {
	folderPath string
	totalSize  int64
	counts     []CategoryCount
	countIndex map[classify.Category]int
	files      []FileRecord
	texts      []string
}

func newSummaryBuilder(folderPath string, capacity int) *summaryBuilder {
	return &summaryBuilder{
		folderPath: folderPath,
		countIndex: make(map[classify.Category]int),
		files:      make([]FileRecord, 0, capacity),
	}
}

// add folds one file into the running totals. Only non-empty text joins the
// aggregate text used for folder keywords.
func (b *summaryBuilder) add(result FileResult) {
	rec := result.Record
	b.totalSize += rec.SizeBytes
	if i, ok := b.countIndex[rec.Category]; ok {
		b.counts[i].Count++
	} else {
		b.countIndex[rec.Category] = len(b.counts)
		b.counts = append(b.counts, CategoryCount{Category: rec.Category, Count: 1})
	}
	b.files = append(b.files, rec)
	if result.Text != "" {
		b.texts = append(b.texts, result.Text)
	}
}

func (b *summaryBuilder) len() int { return len(b.files) }

// aggregateText returns the text of all files joined by single spaces.
func (b *summaryBuilder) aggregateText() string {
	return strings.Join(b.texts, " ")
}

func (b *summaryBuilder) build(topKeywords []string) FolderSummary {
	if topKeywords == nil {
		topKeywords = []string{}
	}
	counts := make([]CategoryCount, len(b.counts))
	copy(counts, b.counts)
	files := make([]FileRecord, len(b.files))
	copy(files, b.files)
	return FolderSummary{
		FolderPath:     b.folderPath,
		TotalSizeBytes: b.totalSize,
		CategoryCounts: counts,
		TopKeywords:    topKeywords,
		Files:          files,
	}
}

// --- END OF NEW FILE pkg/summarizer/summary.go ---
