package db

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// FuzzySource adapts token entries to fuzzy.Source, matching on symbols.
type FuzzySource []TokenEntry

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	return self[i].Symbol
}

func getSymbolMatches(input string, source FuzzySource, max int) []TokenEntry {
	matches := fuzzy.FindFrom(strings.ToUpper(strings.ReplaceAll(input, " ", "")), source)
	result := []TokenEntry{}
	for i := 0; i < max && i < len(matches); i++ {
		result = append(result, source[matches[i].Index])
	}
	return result
}
