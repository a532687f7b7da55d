// Package jsonl reads a normalized catalog stored as JSON lines.
package jsonl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// maxLineBytes bounds a single catalog record.
const maxLineBytes = 1 << 20

// Record is the on-disk shape of one catalog row.
type Record struct {
	Title          string   `json:"title"`
	TitleURL       *string  `json:"title_url,omitempty"`
	ReleaseYear    *int     `json:"release_year,omitempty"`
	RuntimeMinutes *int     `json:"runtime_minutes,omitempty"`
	Rating         *string  `json:"rating,omitempty"`
	Genres         []string `json:"genres"`
	Persona        *string  `json:"persona,omitempty"`
	ContentType    string   `json:"content_type,omitempty"`
	CombinedText   string   `json:"combined_text,omitempty"`
}

// Entry converts the record to a catalog entry.
func (r Record) Entry() domain.CatalogEntry {
	return domain.CatalogEntry{
		Title:          strings.TrimSpace(r.Title),
		TitleURL:       r.TitleURL,
		ReleaseYear:    r.ReleaseYear,
		RuntimeMinutes: r.RuntimeMinutes,
		Rating:         r.Rating,
		Genres:         r.Genres,
		Persona:        r.Persona,
		ContentType:    parseContentType(r.ContentType),
		CombinedText:   r.CombinedText,
	}
}

// FromEntry converts a catalog entry to its on-disk record.
func FromEntry(e domain.CatalogEntry) Record {
	return Record{
		Title:          e.Title,
		TitleURL:       e.TitleURL,
		ReleaseYear:    e.ReleaseYear,
		RuntimeMinutes: e.RuntimeMinutes,
		Rating:         e.Rating,
		Genres:         e.Genres,
		Persona:        e.Persona,
		ContentType:    e.ContentType.OrUnknown().String(),
		CombinedText:   e.CombinedText,
	}
}

func parseContentType(s string) domain.ContentType {
	ct := domain.ContentType(strings.ToLower(strings.TrimSpace(s)))
	if !ct.IsValid() {
		return domain.ContentTypeUnknown
	}
	return ct
}

// Source reads a catalog file.
type Source struct {
	path string
}

// NewSource creates a source for the JSONL file at path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load decodes every record in file order.
func (s *Source) Load(ctx context.Context) ([]domain.CatalogEntry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: catalog %s", domain.ErrNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Decode(ctx, f)
}

// Decode reads JSON-lines records from r. Blank lines and lines starting
// with '#' are skipped. A record without a title is an error.
func Decode(ctx context.Context, r io.Reader) ([]domain.CatalogEntry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var entries []domain.CatalogEntry
	line := 0
	for scanner.Scan() {
		line++
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrInvalidInput, line, err)
		}
		entry := rec.Entry()
		if entry.Title == "" {
			return nil, fmt.Errorf("%w: line %d: title is required", domain.ErrInvalidInput, line)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return entries, nil
}
