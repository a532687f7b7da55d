package domain

import "strings"

// ContentType classifies a catalog entry.
type ContentType string

// Available content types.
const (
	// ContentTypeMovie is a feature film.
	ContentTypeMovie ContentType = "movie"

	// ContentTypeSeries is an episodic series.
	ContentTypeSeries ContentType = "series"

	// ContentTypeUnknown is used when the type cannot be inferred.
	ContentTypeUnknown ContentType = "unknown"
)

// IsValid returns true if the content type is recognised.
func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeMovie, ContentTypeSeries, ContentTypeUnknown:
		return true
	default:
		return false
	}
}

// OrUnknown returns the content type, or ContentTypeUnknown if it is empty.
func (c ContentType) OrUnknown() ContentType {
	if c == "" {
		return ContentTypeUnknown
	}
	return c
}

// String returns the string representation.
func (c ContentType) String() string {
	return string(c)
}

// CatalogEntry is a single normalized title in the catalog.
// Entries are immutable once loaded.
type CatalogEntry struct {
	// Title is the display title (required).
	Title string

	// TitleURL links to the title's landing page.
	TitleURL *string

	// ReleaseYear is the year of first release.
	ReleaseYear *int

	// RuntimeMinutes is the total runtime. Usually absent for series.
	RuntimeMinutes *int

	// Rating is the content rating code (e.g. "TV-MA", "PG-13").
	Rating *string

	// Genres is the ordered, deduplicated genre list. Never nil.
	Genres []string

	// Persona is an audience-segment label assigned by an external
	// clustering process.
	Persona *string

	// ContentType classifies the entry.
	ContentType ContentType

	// CombinedText is the retrieval text used by the lexical engine.
	CombinedText string
}

// RatingCode returns the trimmed rating code, or "" if absent.
func (e *CatalogEntry) RatingCode() string {
	if e.Rating == nil {
		return ""
	}
	return strings.TrimSpace(*e.Rating)
}

// PersonaLabel returns the persona label, or "" if absent.
func (e *CatalogEntry) PersonaLabel() string {
	if e.Persona == nil {
		return ""
	}
	return *e.Persona
}

// NormalizeGenres deduplicates genres preserving first-seen order and
// drops blank values. The result is never nil.
func NormalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	seen := make(map[string]bool, len(genres))
	for _, g := range genres {
		g = strings.Join(strings.Fields(g), " ")
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}

// BuildCombinedText returns the title followed by the space-joined genres,
// with whitespace collapsed.
func BuildCombinedText(title string, genres []string) string {
	parts := make([]string, 0, len(genres)+1)
	parts = append(parts, title)
	parts = append(parts, genres...)
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Catalog is the ordered, read-only table of entries shared by every
// component for the lifetime of the process.
type Catalog struct {
	entries     []CatalogEntry
	fingerprint string
}

// NewCatalog builds a catalog from normalized entries. Missing genre lists
// become empty lists, empty content types become unknown and a missing
// combined text is derived from title and genres. The entries slice is
// copied so callers cannot alias the catalog's storage.
func NewCatalog(entries []CatalogEntry) *Catalog {
	owned := make([]CatalogEntry, len(entries))
	for i := range entries {
		e := entries[i]
		e.Genres = NormalizeGenres(e.Genres)
		e.ContentType = e.ContentType.OrUnknown()
		if e.CombinedText == "" {
			e.CombinedText = BuildCombinedText(e.Title, e.Genres)
		}
		owned[i] = e
	}
	return &Catalog{entries: owned}
}

// WithFingerprint returns the catalog with its data-version fingerprint set.
func (c *Catalog) WithFingerprint(fp string) *Catalog {
	return &Catalog{entries: c.entries, fingerprint: fp}
}

// Len returns the number of rows.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns a copy of the entry at row i.
func (c *Catalog) At(i int) CatalogEntry {
	return c.entries[i]
}

// Entry returns a read-only pointer to the entry at row i.
// Callers must not modify the entry.
func (c *Catalog) Entry(i int) *CatalogEntry {
	return &c.entries[i]
}

// Fingerprint returns the data-version fingerprint.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// CombinedTexts returns the retrieval text of every row in catalog order.
func (c *Catalog) CombinedTexts() []string {
	texts := make([]string, len(c.entries))
	for i := range c.entries {
		texts[i] = c.entries[i].CombinedText
	}
	return texts
}

// CatalogStats summarises the catalog's attribute distribution.
type CatalogStats struct {
	Rows         int            `json:"rows"`
	Ratings      map[string]int `json:"ratings"`
	ContentTypes map[string]int `json:"content_types"`
	YearMin      *int           `json:"year_min"`
	YearMax      *int           `json:"year_max"`
}
