package schemaorg

import "github.com/fwojciec/locrecipe"

// indexWebsite records the name of the first WebSite entity on the page,
// scanning syntaxes in priority order.
func (s *SchemaOrg) indexWebsite(ext locrecipe.Extraction) {
	for _, syntax := range locrecipe.DefaultSyntaxes {
		for _, node := range ext[syntax] {
			if website, ok := node.FindEntity("WebSite"); ok {
				s.websiteName = website.String("name")
				return
			}
		}
	}
}

// indexPeople maps Person entities by @id, or by url when @id is absent.
// Later entities overwrite earlier ones with the same key.
func (s *SchemaOrg) indexPeople(ext locrecipe.Extraction) {
	for _, syntax := range locrecipe.DefaultSyntaxes {
		for _, node := range ext[syntax] {
			person, ok := node.FindEntity("Person")
			if !ok {
				continue
			}
			key := person.ID()
			if key == "" {
				key = person.String("url")
			}
			if key != "" {
				s.people[key] = person
			}
		}
	}
}

// indexRatings maps AggregateRating entities by @id. Ratings without an
// @id are only reachable inline.
func (s *SchemaOrg) indexRatings(ext locrecipe.Extraction) {
	for _, syntax := range locrecipe.DefaultSyntaxes {
		for _, node := range ext[syntax] {
			rating, ok := node.FindEntity("AggregateRating")
			if !ok {
				continue
			}
			if id := rating.ID(); id != "" {
				s.ratings[id] = rating
			}
		}
	}
}
