package locrecipe

// TextProcessor normalizes and parses the free-form text found in recipe
// structured data.
type TextProcessor interface {
	// Normalize canonicalizes whitespace, entities and unicode forms.
	Normalize(s string) string

	// Minutes parses a duration such as "PT1H30M" or "1 hour 30 mins".
	// Returns EINVALID if the text is not a recognizable duration.
	Minutes(s string) (int, error)

	// Yields parses a yield description such as "4" or "Makes 12 cookies".
	Yields(s string) (string, error)

	// Tags splits a comma-separated string into distinct tags.
	Tags(s string) []string

	// DietName formats a diet identifier such as "https://schema.org/VeganDiet".
	DietName(s string) string
}
