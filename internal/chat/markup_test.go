package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{"plain", "no markup", []Span{{Text: "no markup"}}},
		{"empty", "", nil},
		{"single bold", "focus on **Data Science** now", []Span{
			{Text: "focus on "}, {Text: "Data Science", Bold: true}, {Text: " now"},
		}},
		{"non-greedy", "**a** and **b**", []Span{
			{Text: "a", Bold: true}, {Text: " and "}, {Text: "b", Bold: true},
		}},
		{"unterminated", "a **b", []Span{{Text: "a **b"}}},
		{"single stars untouched", "*a* b", []Span{{Text: "*a* b"}}},
		{"empty bold dropped", "x****y", []Span{{Text: "x"}, {Text: "y"}}},
		{"no newline crossing", "**a\nb**", []Span{{Text: "**a\nb**"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMarkup(tt.in))
		})
	}
}
