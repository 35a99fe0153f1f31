package insights

import (
	"regexp"
	"strconv"
	"strings"
)

// PriceSuggestion is a parsed price recommendation extracted from a
// collaborator's free-text response.
type PriceSuggestion struct {
	Price      float64
	Reasoning  string
	Confidence float64
}

// SuggestionParser turns collaborator text into a price suggestion. A false
// return means the text held no parsable recommendation; the caller discards
// that single analysis and continues with the rest of the batch.
type SuggestionParser interface {
	Parse(text string) (*PriceSuggestion, bool)
}

// DollarFigureParser extracts the first dollar figure found in the text.
// Callers that embed multiple figures must put the recommendation first;
// downstream formatting relies on first-figure extraction.
type DollarFigureParser struct{}

var dollarFigure = regexp.MustCompile(`\$\s*([0-9]+(?:\.[0-9]{1,2})?)`)

func (DollarFigureParser) Parse(text string) (*PriceSuggestion, bool) {
	match := dollarFigure.FindStringSubmatch(text)
	if match == nil {
		return nil, false
	}
	price, err := strconv.ParseFloat(match[1], 64)
	if err != nil || price <= 0 {
		return nil, false
	}
	return &PriceSuggestion{
		Price:      price,
		Reasoning:  strings.TrimSpace(text),
		Confidence: 0.8,
	}, true
}
