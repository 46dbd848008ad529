package grocery

// Item is a single grocery item extracted from a document line or a voice
// transcription token. Name is the cleaned-up text, Category is the first
// matching taxonomy category (empty when nothing matched), Original is the
// source line the item was built from.
type Item struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Original string `json:"original"`
}

// Category pairs a category name with the ordered keyword list used for
// substring matching. Keyword order and category order are both part of the
// matching contract: the first hit wins.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Taxonomy is an ordered list of categories. It is treated as immutable
// after construction.
type Taxonomy []Category
