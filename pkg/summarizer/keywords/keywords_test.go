package keywords_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stackvity/folder-summary/pkg/summarizer/keywords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Empty", "", nil},
		{"Punctuation only", "!?., ;", []string{}},
		{"Simple sentence", "Hello, world! 123", []string{"hello", "world", "123"}},
		{"Underscore joins", "snake_case and CamelCase", []string{"snake_case", "and", "camelcase"}},
		{"Apostrophe splits", "don't stop", []string{"don", "t", "stop"}},
		{"Unicode letters", "Café naïve Ünïcödé", []string{"café", "naïve", "ünïcödé"}},
		{"Digits and letters", "v2 release 2024", []string{"v2", "release", "2024"}},
		{"Newlines and tabs", "one\ttwo\nthree", []string{"one", "two", "three"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := keywords.Tokenize(tc.input)
			if len(tc.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 3, keywords.CountWords("Hello, world! 123"))
	assert.Equal(t, 0, keywords.CountWords(""))
	assert.Equal(t, 4, keywords.CountWords("Alpha beta beta gamma"))
}

func TestExtractor_Extract(t *testing.T) {
	extractor := keywords.NewDefaultExtractor()

	t.Run("Stop words removed and frequency order", func(t *testing.T) {
		assert.Equal(t, []string{"cat", "dog"}, extractor.Extract("the the cat cat cat dog", 2))
	})

	t.Run("Ties keep first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"beta", "alpha", "gamma"}, extractor.Extract("Alpha beta beta gamma", 5))
	})

	t.Run("Fewer tokens than topN", func(t *testing.T) {
		got := extractor.Extract("apple banana", 5)
		assert.LessOrEqual(t, len(got), 5)
		assert.Equal(t, []string{"apple", "banana"}, got)
	})

	t.Run("Short tokens dropped", func(t *testing.T) {
		assert.Equal(t, []string{"long"}, extractor.Extract("ab ab ab xy long", 5))
	})

	t.Run("Zero topN", func(t *testing.T) {
		got := extractor.Extract("apple apple", 0)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Empty text", func(t *testing.T) {
		assert.Empty(t, extractor.Extract("", 10))
	})

	t.Run("Case folded counts", func(t *testing.T) {
		assert.Equal(t, []string{"report", "draft"}, extractor.Extract("Draft REPORT report Report", 2))
	})
}

func TestExtractor_CustomSettings(t *testing.T) {
	extractor := keywords.NewExtractor(keywords.NewStopWords([]string{"Widget"}), 5)
	got := extractor.Extract("widget widget gadget gadget tools tools tools", 10)
	assert.Equal(t, []string{"tools", "gadget"}, got)

	noStops := keywords.NewExtractor(nil, 0)
	assert.Equal(t, []string{"the"}, noStops.Extract("the the", 1), "nil stop words filter nothing, min length defaults to 3")
}

func TestDefaultStopWords(t *testing.T) {
	stops := keywords.DefaultStopWords()
	assert.Equal(t, 179, stops.Len())
	assert.True(t, stops.Contains("the"))
	assert.True(t, stops.Contains("wouldn't"))
	assert.False(t, stops.Contains("cat"))
}

func TestLoadStopWords(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("Plain list", func(t *testing.T) {
		stops, err := keywords.LoadStopWords(write("stops.txt", "# comment\nFoo\n\n  bar  \n"))
		require.NoError(t, err)
		assert.Equal(t, 2, stops.Len())
		assert.True(t, stops.Contains("foo"))
		assert.True(t, stops.Contains("bar"))
	})

	t.Run("YAML sequence", func(t *testing.T) {
		stops, err := keywords.LoadStopWords(write("stops.yaml", "- alpha\n- Beta\n"))
		require.NoError(t, err)
		assert.True(t, stops.Contains("beta"))
		assert.Equal(t, 2, stops.Len())
	})

	t.Run("YAML document", func(t *testing.T) {
		stops, err := keywords.LoadStopWords(write("stops.yml", "words:\n  - gamma\n  - delta\n"))
		require.NoError(t, err)
		assert.True(t, stops.Contains("gamma"))
		assert.True(t, stops.Contains("delta"))
	})

	t.Run("TOML document", func(t *testing.T) {
		stops, err := keywords.LoadStopWords(write("stops.toml", "words = [\"epsilon\", \"Zeta\"]\n"))
		require.NoError(t, err)
		assert.True(t, stops.Contains("epsilon"))
		assert.True(t, stops.Contains("zeta"))
	})

	t.Run("Invalid TOML", func(t *testing.T) {
		_, err := keywords.LoadStopWords(write("bad.toml", "words = [\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, keywords.ErrStopWordsLoad)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := keywords.LoadStopWords(filepath.Join(dir, "missing.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, keywords.ErrStopWordsLoad)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
