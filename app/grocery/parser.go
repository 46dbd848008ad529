package grocery

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Leading list markers, in priority order. At most one marker is stripped
// per line.
var markerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+[.)]\s*`),   // 1. or 1)
	regexp.MustCompile(`^[-*•]\s*`),     // -, *, •
	regexp.MustCompile(`^\[\s*\]\s*`),   // [ ]
	regexp.MustCompile(`^\(\s*\)\s*`),   // ( )
}

// Optional leading quantity, e.g. "2 apples", "1 lb chicken", "3 bags chips".
// The unit vocabulary is fixed; a bare integer also counts as a quantity.
var quantityPattern = regexp.MustCompile(`(?i)^\d+\s*(lbs?|oz|kg|g|bags?|cans?|bottles?|box(?:es)?|packs?)?\s*`)

// Lines containing one of these with at most 3 words are treated as list
// headers or footers, not items.
var stopKeywords = []string{"grocery", "list", "shopping", "store", "items", "total", "date"}

// Parser turns extracted document text into grocery items. It never fails:
// lines that do not look like items are simply dropped.
type Parser struct {
	tagger *Tagger
}

func NewParser(tagger *Tagger) *Parser {
	return &Parser{tagger: tagger}
}

// Run extracts items from line-oriented text. It handles plain lists,
// numbered lists, bulleted lists, checkbox lists, and quantity prefixes.
// Output order follows input line order.
func (p *Parser) Run(text string) []Item {
	items := make([]Item, 0)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, ok := p.cleanLine(line)
		if !ok {
			continue
		}

		items = append(items, Item{
			Name:     name,
			Category: p.tagger.Run(name),
			Original: line,
		})
	}

	return items
}

// RunVoice extracts items from a voice transcription, which typically comes
// comma-separated or "and"-separated ("apples, bananas, milk and cheese").
// Voice input is assumed pre-clean: no marker or quantity stripping, no
// header or stop-keyword filtering.
func (p *Parser) RunVoice(text string) []Item {
	text = strings.ReplaceAll(text, " and ", ", ")

	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})

	items := make([]Item, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if utf8.RuneCountInString(token) < 2 {
			continue
		}

		items = append(items, Item{
			Name:     token,
			Category: p.tagger.Run(token),
			Original: token,
		})
	}

	return items
}

// cleanLine strips list markers and quantity prefixes, then applies the
// item filters. Returns false when the line should not become an item.
func (p *Parser) cleanLine(line string) (string, bool) {
	for _, marker := range markerPatterns {
		if loc := marker.FindStringIndex(line); loc != nil {
			line = line[loc[1]:]
			break
		}
	}

	line = quantityPattern.ReplaceAllString(line, "")
	line = strings.TrimSpace(line)

	length := utf8.RuneCountInString(line)
	if length < 2 || length > 100 {
		return "", false
	}

	// Headers and titles tend to be long and all-caps.
	if length > 15 && isAllUpper(line) {
		return "", false
	}

	// The word-count guard keeps longer sentences that merely contain a
	// stop word as a substring.
	if len(strings.Fields(line)) <= 3 {
		lowered := strings.ToLower(line)
		for _, keyword := range stopKeywords {
			if strings.Contains(lowered, keyword) {
				return "", false
			}
		}
	}

	return line, true
}

// isAllUpper reports whether the string has at least one cased letter and
// no lowercase letters.
func isAllUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
