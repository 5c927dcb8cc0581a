// --- START OF NEW FILE pkg/summarizer/keywords/stopwords.go ---
package keywords

import (
	"bufio"
	_ "embed" // Required for //go:embed
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed english.txt
var englishStopWords string

// ErrStopWordsLoad indicates that a stop-word file could not be read or parsed.
var ErrStopWordsLoad = errors.New("failed to load stop words")

// StopWords is a set of lowercase words excluded from keyword ranking.
type StopWords map[string]struct{}

// Contains reports whether word is in the set. A nil set contains nothing.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words in the set.
func (s StopWords) Len() int { return len(s) }

// NewStopWords builds a set from words, lowercasing and trimming each entry.
// Empty entries are ignored.
func NewStopWords(words []string) StopWords {
	set := make(StopWords, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

var (
	defaultStopWordsOnce sync.Once
	defaultStopWords     StopWords
)

// DefaultStopWords returns the embedded English stop-word list. The returned
// set is shared and must not be modified.
func DefaultStopWords() StopWords {
	defaultStopWordsOnce.Do(func() {
		defaultStopWords = NewStopWords(parseLines(englishStopWords))
	})
	return defaultStopWords
}

// stopWordsDocument is the structured form accepted in YAML and TOML files.
type stopWordsDocument struct {
	Words []string `yaml:"words" toml:"words"`
}

// LoadStopWords reads a stop-word list from path. The format follows the file
// extension: ".yaml"/".yml" accept either a sequence or a document with a
// "words" key, ".toml" expects a "words" array, and any other extension is read
// as one word per line with '#' comments.
func LoadStopWords(path string) (StopWords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStopWordsLoad, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var list []string
		if err := yaml.Unmarshal(data, &list); err == nil {
			return NewStopWords(list), nil
		}
		var doc stopWordsDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: parse YAML %s: %w", ErrStopWordsLoad, path, err)
		}
		return NewStopWords(doc.Words), nil
	case ".toml":
		var doc stopWordsDocument
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("%w: parse TOML %s: %w", ErrStopWordsLoad, path, err)
		}
		return NewStopWords(doc.Words), nil
	default:
		return NewStopWords(parseLines(string(data))), nil
	}
}

// parseLines splits a plain list into words, skipping blanks and '#' comments.
func parseLines(content string) []string {
	var words []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}

// --- END OF NEW FILE pkg/summarizer/keywords/stopwords.go ---
