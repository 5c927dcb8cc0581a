// --- START OF NEW FILE pkg/summarizer/classify/classify.go ---
package classify

import (
	"path/filepath"
	"strings"
)

// Category is the coarse file-type label derived from a file's extension.
// The set of values is closed; anything unrecognised maps to CategoryOther.
type Category string

// Constants representing the defined file categories.
const (
	CategoryPDF   Category = "pdf"
	CategoryDocx  Category = "docx"
	CategoryTxt   Category = "txt"
	CategoryJPG   Category = "jpg"
	CategoryJPEG  Category = "jpeg"
	CategoryPNG   Category = "png"
	CategoryOther Category = "other"
)

// Kind is the decoder variant a Category dispatches to.
type Kind int

const (
	KindOther Kind = iota
	KindPDF
	KindDocx
	KindText
	KindImage
)

// knownCategories maps a lowercase extension (without the dot) to its category.
var knownCategories = map[string]Category{
	"pdf":  CategoryPDF,
	"docx": CategoryDocx,
	"txt":  CategoryTxt,
	"jpg":  CategoryJPG,
	"jpeg": CategoryJPEG,
	"png":  CategoryPNG,
}

// Classify returns the category of path based solely on its lowercase extension.
// The file content is never inspected. Leading dots of the base name do not
// start an extension, so ".txt" has none.
func Classify(path string) Category {
	base := strings.TrimLeft(filepath.Base(path), ".")
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(base)), ".")
	if c, ok := knownCategories[ext]; ok {
		return c
	}
	return CategoryOther
}

// Kind returns the decoder variant for the category.
func (c Category) Kind() Kind {
	switch c {
	case CategoryPDF:
		return KindPDF
	case CategoryDocx:
		return KindDocx
	case CategoryTxt:
		return KindText
	case CategoryJPG, CategoryJPEG, CategoryPNG:
		return KindImage
	default:
		return KindOther
	}
}

// HasText reports whether files of this kind carry extractable text.
func (k Kind) HasText() bool {
	return k == KindPDF || k == KindDocx || k == KindText
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindDocx:
		return "docx"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return "other"
	}
}

// --- END OF NEW FILE pkg/summarizer/classify/classify.go ---
