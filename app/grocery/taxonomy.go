package grocery

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTaxonomy returns the built-in grocery category taxonomy.
// Declaration order matters: "frozen pizza" must match "frozen" before any
// produce or pantry keyword gets a chance.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		{Name: "produce", Keywords: []string{"apple", "banana", "orange", "lettuce", "tomato", "potato", "onion", "carrot", "broccoli", "spinach"}},
		{Name: "dairy", Keywords: []string{"milk", "cheese", "yogurt", "butter", "cream", "eggs"}},
		{Name: "meat", Keywords: []string{"chicken", "beef", "pork", "fish", "turkey", "lamb", "bacon", "sausage"}},
		{Name: "bakery", Keywords: []string{"bread", "bagel", "muffin", "croissant", "buns", "rolls"}},
		{Name: "pantry", Keywords: []string{"rice", "pasta", "flour", "sugar", "salt", "pepper", "oil", "sauce", "cereal"}},
		{Name: "beverages", Keywords: []string{"coffee", "tea", "juice", "soda", "water", "beer", "wine"}},
		{Name: "snacks", Keywords: []string{"chips", "crackers", "cookies", "candy", "nuts", "popcorn"}},
		{Name: "frozen", Keywords: []string{"ice cream", "frozen pizza", "frozen vegetables", "frozen fruit"}},
		{Name: "cleaning", Keywords: []string{"soap", "detergent", "bleach", "sponge", "paper towels", "toilet paper"}},
	}
}

// LoadTaxonomy reads a taxonomy override from a YAML file. The file is an
// ordered sequence of categories, and the sequence order is preserved.
func LoadTaxonomy(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var taxonomy Taxonomy
	if err := yaml.Unmarshal(data, &taxonomy); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateTaxonomy(taxonomy); err != nil {
		return nil, fmt.Errorf("invalid taxonomy %s: %w", path, err)
	}

	return taxonomy, nil
}

func validateTaxonomy(taxonomy Taxonomy) error {
	if len(taxonomy) == 0 {
		return fmt.Errorf("taxonomy must contain at least one category")
	}

	seen := make(map[string]bool, len(taxonomy))
	for i, category := range taxonomy {
		if category.Name == "" {
			return fmt.Errorf("category at index %d has no name", i)
		}
		if seen[category.Name] {
			return fmt.Errorf("duplicate category name: %s", category.Name)
		}
		seen[category.Name] = true

		if len(category.Keywords) == 0 {
			return fmt.Errorf("category '%s' must have at least one keyword", category.Name)
		}
		for j, keyword := range category.Keywords {
			if keyword == "" {
				return fmt.Errorf("category '%s' has an empty keyword at index %d", category.Name, j)
			}
		}
	}

	return nil
}
