package grocery

import (
	"strings"
)

// Tagger assigns a category to an item name by substring-matching against
// its taxonomy. It holds no mutable state and is safe for concurrent use.
type Tagger struct {
	taxonomy Taxonomy
}

func NewTagger(taxonomy Taxonomy) *Tagger {
	return &Tagger{taxonomy: taxonomy}
}

// Run returns the first category whose any keyword is a substring of the
// lowercased name, or "" when nothing matches. Categories and keywords are
// checked in declaration order, so ties break deterministically.
func (t *Tagger) Run(name string) string {
	lowered := strings.ToLower(name)

	for _, category := range t.taxonomy {
		for _, keyword := range category.Keywords {
			if strings.Contains(lowered, keyword) {
				return category.Name
			}
		}
	}

	return ""
}
