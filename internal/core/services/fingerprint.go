package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// Column names a catalog column that can feed the fingerprint.
type Column string

// Fingerprintable columns.
const (
	ColumnTitle          Column = "title"
	ColumnTitleURL       Column = "title_url"
	ColumnCombinedText   Column = "combined_text"
	ColumnReleaseYear    Column = "release_year"
	ColumnRuntimeMinutes Column = "runtime_minutes"
	ColumnRating         Column = "rating"
	ColumnGenres         Column = "genres"
	ColumnPersona        Column = "persona"
	ColumnContentType    Column = "content_type"
)

const (
	fieldDelimiter   = "|"
	recordTerminator = "\n"
)

// RetrievalColumns is the column set shared by the cache builder and the
// runtime check. Changing it invalidates every existing embedding cache.
var RetrievalColumns = []Column{
	ColumnTitle,
	ColumnCombinedText,
	ColumnReleaseYear,
	ColumnRating,
	ColumnContentType,
}

// Fingerprint hashes the named columns of every row, in catalog order,
// with SHA-256 and returns the hex digest. Each row contributes its
// column values joined by "|" and terminated by "\n". Absent values and
// unknown column names contribute the empty string.
//
// The result is a cache-invalidation key: reordering columns or changing
// how a value is formatted changes it.
func Fingerprint(c *domain.Catalog, columns ...Column) string {
	h := sha256.New()
	fields := make([]string, len(columns))
	for i := 0; i < c.Len(); i++ {
		e := c.Entry(i)
		for j, col := range columns {
			fields[j] = columnValue(e, col)
		}
		h.Write([]byte(strings.Join(fields, fieldDelimiter) + recordTerminator))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// FingerprintCatalog returns the catalog with its retrieval fingerprint set.
func FingerprintCatalog(c *domain.Catalog) *domain.Catalog {
	return c.WithFingerprint(Fingerprint(c, RetrievalColumns...))
}

func columnValue(e *domain.CatalogEntry, col Column) string {
	switch col {
	case ColumnTitle:
		return e.Title
	case ColumnTitleURL:
		return derefString(e.TitleURL)
	case ColumnCombinedText:
		return e.CombinedText
	case ColumnReleaseYear:
		return formatInt(e.ReleaseYear)
	case ColumnRuntimeMinutes:
		return formatInt(e.RuntimeMinutes)
	case ColumnRating:
		return derefString(e.Rating)
	case ColumnGenres:
		return strings.Join(e.Genres, ",")
	case ColumnPersona:
		return derefString(e.Persona)
	case ColumnContentType:
		return e.ContentType.String()
	default:
		return ""
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
