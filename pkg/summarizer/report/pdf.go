package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"
)

type pdfStyle struct {
	fontStyle  string
	fontSize   float64
	lineHeight float64
	spaceAbove float64
}

var pdfStyles = map[BlockKind]pdfStyle{
	BlockHeading1:  {fontStyle: "B", fontSize: 18, lineHeight: 9, spaceAbove: 0},
	BlockHeading2:  {fontStyle: "B", fontSize: 14, lineHeight: 7, spaceAbove: 4},
	BlockParagraph: {fontStyle: "", fontSize: 11, lineHeight: 5.5, spaceAbove: 0},
}

// UnencodableRunes lists, in order of first appearance, the runes in blocks
// that have no cp1252 code point and are therefore dropped by RenderPDF.
func UnencodableRunes(blocks []Block) []rune {
	var missing []rune
	seen := make(map[rune]bool)
	for _, block := range blocks {
		for _, r := range block.Text {
			if seen[r] {
				continue
			}
			seen[r] = true
			if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
				missing = append(missing, r)
			}
		}
	}
	return missing
}

// RenderPDF writes blocks as an A4 PDF using the Helvetica core font. Text is
// translated to the cp1252 code page; runes outside it are dropped.
func RenderPDF(w io.Writer, blocks []Block) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Folder Summary Report", true)
	doc.SetCreator("folder-summary", true)
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	for _, block := range blocks {
		style, ok := pdfStyles[block.Kind]
		if !ok {
			style = pdfStyles[BlockParagraph]
		}
		if style.spaceAbove > 0 {
			doc.Ln(style.spaceAbove)
		}
		doc.SetFont("Helvetica", style.fontStyle, style.fontSize)
		doc.MultiCell(0, style.lineHeight, tr(block.Text), "", "L", false)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
