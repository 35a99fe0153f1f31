package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarFigureParser(t *testing.T) {
	parser := DollarFigureParser{}

	tests := []struct {
		name  string
		text  string
		ok    bool
		price float64
	}{
		{"plain figure", "Raise the price to $14.99 for better margins", true, 14.99},
		{"space after sign", "Target $ 12 per plate", true, 12},
		{"first figure wins", "Move from $10.50 to $13.00", true, 10.50},
		{"integer figure", "Market rate is around $16", true, 16},
		{"zero figure rejected", "Drop it to $0.00 as a loss leader", false, 0},
		{"no figure", "Consider seasonal pricing adjustments", false, 0},
		{"bare number without sign", "Charge 15 dollars", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestion, ok := parser.Parse(tt.text)
			require.Equal(t, tt.ok, ok)
			if !ok {
				assert.Nil(t, suggestion)
				return
			}
			assert.Equal(t, tt.price, suggestion.Price)
			assert.Equal(t, 0.8, suggestion.Confidence)
			assert.NotEmpty(t, suggestion.Reasoning)
		})
	}
}
