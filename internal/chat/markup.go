package chat

import "regexp"

// Span is a run of reply text with uniform styling.
type Span struct {
	Text string
	Bold bool
}

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// ParseMarkup splits text into plain and bold spans. Only **bold** is
// recognised; markers are matched non-greedily and never span lines.
func ParseMarkup(text string) []Span {
	var spans []Span
	last := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		if m[3] > m[2] {
			spans = append(spans, Span{Text: text[m[2]:m[3]], Bold: true})
		}
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}
