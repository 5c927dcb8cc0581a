package classify_test

import (
	"testing"

	"github.com/stackvity/folder-summary/pkg/summarizer/classify"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected classify.Category
	}{
		{"PDF lowercase", "report.pdf", classify.CategoryPDF},
		{"PDF uppercase", "REPORT.PDF", classify.CategoryPDF},
		{"Docx mixed case", "/tmp/Notes.DocX", classify.CategoryDocx},
		{"Text", "notes.txt", classify.CategoryTxt},
		{"JPG", "a/b/photo.jpg", classify.CategoryJPG},
		{"JPEG", "photo.JPEG", classify.CategoryJPEG},
		{"PNG", "icon.png", classify.CategoryPNG},
		{"Unknown extension", "main.go", classify.CategoryOther},
		{"No extension", "Makefile", classify.CategoryOther},
		{"Dotfile has no extension", ".txt", classify.CategoryOther},
		{"Dotfile with extension", ".notes.txt", classify.CategoryTxt},
		{"Double extension uses last", "archive.txt.gz", classify.CategoryOther},
		{"Doc is not docx", "legacy.doc", classify.CategoryOther},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classify.Classify(tc.path))
		})
	}
}

func TestCategoryKind(t *testing.T) {
	assert.Equal(t, classify.KindPDF, classify.CategoryPDF.Kind())
	assert.Equal(t, classify.KindDocx, classify.CategoryDocx.Kind())
	assert.Equal(t, classify.KindText, classify.CategoryTxt.Kind())
	assert.Equal(t, classify.KindImage, classify.CategoryJPG.Kind())
	assert.Equal(t, classify.KindImage, classify.CategoryJPEG.Kind())
	assert.Equal(t, classify.KindImage, classify.CategoryPNG.Kind())
	assert.Equal(t, classify.KindOther, classify.CategoryOther.Kind())
}

func TestKindHasText(t *testing.T) {
	assert.True(t, classify.KindPDF.HasText())
	assert.True(t, classify.KindDocx.HasText())
	assert.True(t, classify.KindText.HasText())
	assert.False(t, classify.KindImage.HasText())
	assert.False(t, classify.KindOther.HasText())
	assert.Equal(t, "image", classify.KindImage.String())
}
