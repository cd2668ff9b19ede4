package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHours(t *testing.T) {
	tests := []struct {
		name        string
		subCategory any
		open        int
		close       int
	}{
		{name: "nightlife", subCategory: "Nightlife Bar", open: 18, close: 2},
		{name: "bars plural", subCategory: "Beer Bars", open: 18, close: 2},
		{name: "cafes", subCategory: "Cafes", open: 8, close: 20},
		{name: "coffee upper case", subCategory: "COFFEE SHOP", open: 8, close: 20},
		{name: "fast food", subCategory: "Fast Food", open: 0, close: 24},
		{name: "convenience", subCategory: "Convenience Store", open: 0, close: 24},
		{name: "shopping", subCategory: "Shopping Center", open: 10, close: 22},
		{name: "mall", subCategory: "Mall", open: 10, close: 22},
		{name: "office", subCategory: "Post Office", open: 8, close: 17},
		{name: "gov", subCategory: "Government Building", open: 8, close: 17},
		{name: "parks", subCategory: "Parks", open: 5, close: 20},
		{name: "beach", subCategory: "Jomtien Beach", open: 5, close: 20},
		{name: "unmatched", subCategory: "Temple", open: 9, close: 21},
		{name: "empty string", subCategory: "", open: 9, close: 21},
		{name: "numeric looking string", subCategory: "12345", open: 9, close: 21},
		{name: "nil", subCategory: nil, open: 9, close: 21},
		{name: "integer", subCategory: 42, open: 9, close: 21},
		{name: "NaN float", subCategory: math.NaN(), open: 9, close: 21},
		{name: "singular bar is not a rule", subCategory: "Sushi Bar", open: 9, close: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, close := ResolveHours(tt.subCategory)
			assert.Equal(t, tt.open, open)
			assert.Equal(t, tt.close, close)
		})
	}
}

func TestResolveHours_FirstRuleWins(t *testing.T) {
	open, close := ResolveHours("Cafes in the Mall")
	assert.Equal(t, 8, open)
	assert.Equal(t, 20, close)

	open, close = ResolveHours("Mall Bars")
	assert.Equal(t, 18, open)
	assert.Equal(t, 2, close)

	open, close = ResolveHours("Beach Convenience")
	assert.Equal(t, 0, open)
	assert.Equal(t, 24, close)
}

func TestHoursRules_ReturnsCopy(t *testing.T) {
	rules := HoursRules()
	assert.Len(t, rules, 6)
	assert.Equal(t, []string{"nightlife", "bars"}, rules[0].Keywords)

	rules[0] = HoursRule{}
	assert.Equal(t, []string{"nightlife", "bars"}, HoursRules()[0].Keywords)
}
