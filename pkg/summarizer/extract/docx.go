package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// wordNamespace is the WordprocessingML main namespace.
const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const docxDocumentPart = "word/document.xml"

// ExtractDocx returns the text of the body paragraphs of a DOCX file in
// document order, one paragraph per line. Paragraphs inside tables and text
// boxes are not part of the body and are skipped. Within a run, tabs and
// breaks are kept as '\t' and '\n'.
func ExtractDocx(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != docxDocumentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", docxDocumentPart, err)
		}
		defer rc.Close()
		paragraphs, err := readParagraphs(rc)
		if err != nil {
			return "", err
		}
		return strings.Join(paragraphs, "\n"), nil
	}
	return "", fmt.Errorf("not a docx document: %s missing", docxDocumentPart)
}

// readParagraphs walks a WordprocessingML document and collects the paragraphs
// that are direct children of the body. Tables, text boxes and block-level
// content controls are skipped.
func readParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		paraDepth  int
		tableDepth int
		boxDepth   int
		sdtDepth   int
		runDepth   int
		inText     bool
	)
	collecting := func() bool {
		return paraDepth == 1 && tableDepth == 0 && boxDepth == 0 && sdtDepth == 0
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", docxDocumentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "txbxContent":
				boxDepth++
			case "sdt":
				// block-level content controls wrap paragraphs outside the body list
				if paraDepth == 0 {
					sdtDepth++
				}
			case "p":
				paraDepth++
				if collecting() {
					current.Reset()
				}
			case "r":
				runDepth++
			case "t":
				inText = collecting()
			case "tab":
				if runDepth > 0 && collecting() {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if runDepth > 0 && collecting() {
					current.WriteByte('\n')
				}
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				tableDepth--
			case "txbxContent":
				boxDepth--
			case "sdt":
				if paraDepth == 0 && sdtDepth > 0 {
					sdtDepth--
				}
			case "p":
				if collecting() {
					paragraphs = append(paragraphs, current.String())
				}
				paraDepth--
			case "r":
				runDepth--
			case "t":
				inText = false
			}
		}
	}
	return paragraphs, nil
}
