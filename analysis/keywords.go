package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nish-b/found-call-explorer/model"
)

// MaxKeywords caps the keyword frequency list.
const MaxKeywords = 25

// minWordLen is exclusive: a word must be longer than this to count.
const minWordLen = 3

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a an the and or but is in on at to for with by of
		that this it as be are was were will would could should can may might must
		has have had do does did i you he she they we their our your my his her its`) {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether w is dropped from keyword counts as a common
// function word.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// Words splits one note into the normalized words that keyword counting
// considers.
func Words(note string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(note), " ")
	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= minWordLen || IsStopWord(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}

// KeywordFrequency counts words across all notes combined and returns the
// MaxKeywords most frequent. Equal counts keep first-encounter order.
func KeywordFrequency(notes []string) []model.Keyword {
	index := make(map[string]int)
	var keywords []model.Keyword

	for _, note := range notes {
		for _, w := range Words(note) {
			if i, ok := index[w]; ok {
				keywords[i].Count++
				continue
			}
			index[w] = len(keywords)
			keywords = append(keywords, model.Keyword{Word: w, Count: 1})
		}
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Count > keywords[j].Count
	})
	if len(keywords) > MaxKeywords {
		keywords = keywords[:MaxKeywords]
	}
	return keywords
}
