// --- START OF NEW FILE pkg/summarizer/keywords/extractor.go ---
package keywords

import (
	"sort"
	"unicode/utf8"
)

// DefaultMinLength is the shortest token, in runes, considered a keyword.
const DefaultMinLength = 3

// KeywordExtractor ranks the significant tokens of a text by frequency.
//
// Stability: Public Stable API - Implementations can be provided externally.
type KeywordExtractor interface {
	// Extract returns at most topN keywords of text, most frequent first.
	// Ties keep the order in which the tokens were first encountered.
	Extract(text string, topN int) []string
}

// Extractor is the default frequency-based KeywordExtractor.
type Extractor struct {
	stopWords StopWords
	minLength int
}

// NewExtractor creates an Extractor. A nil stop-word set filters nothing and a
// minLength below 1 falls back to DefaultMinLength.
func NewExtractor(stopWords StopWords, minLength int) *Extractor { // minimal comment
	if minLength < 1 {
		minLength = DefaultMinLength
	}
	return &Extractor{stopWords: stopWords, minLength: minLength}
}

// NewDefaultExtractor returns an Extractor using the embedded English stop words.
func NewDefaultExtractor() *Extractor {
	return NewExtractor(DefaultStopWords(), DefaultMinLength)
}

// Extract implements KeywordExtractor.
func (e *Extractor) Extract(text string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}

	counts := make(map[string]int)
	var order []string // first-seen order, used as the tie breaker
	for _, tok := range Tokenize(text) {
		if utf8.RuneCountInString(tok) < e.minLength || e.stopWords.Contains(tok) {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	result := make([]string, len(order))
	copy(result, order)
	return result
}

// --- END OF NEW FILE pkg/summarizer/keywords/extractor.go ---
