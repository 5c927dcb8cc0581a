package report

import (
	"fmt"
	"strings"

	"github.com/stackvity/folder-summary/pkg/summarizer"
)

// BlockKind is the role of a Block in a rich document.
type BlockKind int

const (
	BlockHeading1 BlockKind = iota + 1
	BlockHeading2
	BlockParagraph
)

// Block is one line of a rich report.
type Block struct {
	Kind BlockKind
	Text string
}

// Blocks lays out s for the docx and pdf renderings. The sections and their
// order match the plain-text report.
func Blocks(s summarizer.FolderSummary) []Block {
	blocks := make([]Block, 0, 6+len(s.CategoryCounts)+len(s.TopKeywords)+len(s.Files))
	blocks = append(blocks,
		Block{BlockHeading1, "Folder Summary Report"},
		Block{BlockParagraph, fmt.Sprintf("Total Files: %d", s.TotalFiles())},
		Block{BlockParagraph, fmt.Sprintf("Total Size: %s MB", FormatDecimal(s.TotalSizeMB()))},
		Block{BlockHeading2, "File Type Breakdown"},
	)
	for _, cc := range s.CategoryCounts {
		blocks = append(blocks, Block{BlockParagraph, fmt.Sprintf("- %s: %d", strings.ToUpper(string(cc.Category)), cc.Count)})
	}
	blocks = append(blocks, Block{BlockHeading2, "Top Keywords"})
	for _, kw := range s.TopKeywords {
		blocks = append(blocks, Block{BlockParagraph, "- " + kw})
	}
	blocks = append(blocks, Block{BlockHeading2, "File Details"})
	for _, rec := range s.Files {
		blocks = append(blocks, Block{BlockParagraph, FileLine(rec)})
	}
	return blocks
}
