// Package locrecipe extracts recipes from web pages using the schema.org
// structured data (JSON-LD and microdata) embedded in their markup.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, readability/).
package locrecipe
