// Package ingest loads catalog documents from JSON files, validates every
// record and writes the valid result to the database. A file either imports
// completely or not at all, and the returned error lists every violation in
// every record rather than stopping at the first bad one.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/atelierhq/atelier/internal/database"
	"github.com/atelierhq/atelier/internal/schema"
)

// CatalogFile is the accepted bulk import document shape. Every section is
// optional; records inside each section are untyped until validated.
type CatalogFile struct {
	Artists     []any `json:"artists"`
	Categories  []any `json:"categories"`
	Collections []any `json:"collections"`
	Artworks    []any `json:"artworks"`
}

// Validated holds the decoded records of one import file.
type Validated struct {
	Artists     []schema.Artist
	Categories  []schema.Category
	Collections []schema.Collection
	Artworks    []schema.Artwork
}

func (v *Validated) Count() int {
	return len(v.Artists) + len(v.Categories) + len(v.Collections) + len(v.Artworks)
}

type CatalogImporter struct {
	store *database.CatalogStore
}

func NewCatalogImporter(store *database.CatalogStore) *CatalogImporter {
	return &CatalogImporter{store: store}
}

// ValidateFile parses and validates an import file without touching the
// database. Violations from independent records are combined so a caller
// sees the whole damage report at once.
func ValidateFile(path string) (*Validated, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file CatalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	var (
		out     Validated
		invalid error
	)
	for i, rec := range file.Artists {
		a, err := schema.DecodeArtist(rec)
		if err != nil {
			invalid = multierr.Append(invalid, fmt.Errorf("artists[%d]: %w", i, err))
			continue
		}
		out.Artists = append(out.Artists, a)
	}
	for i, rec := range file.Categories {
		c, err := schema.DecodeCategory(rec)
		if err != nil {
			invalid = multierr.Append(invalid, fmt.Errorf("categories[%d]: %w", i, err))
			continue
		}
		out.Categories = append(out.Categories, c)
	}
	for i, rec := range file.Collections {
		c, err := schema.DecodeCollection(rec)
		if err != nil {
			invalid = multierr.Append(invalid, fmt.Errorf("collections[%d]: %w", i, err))
			continue
		}
		out.Collections = append(out.Collections, c)
	}
	for i, rec := range file.Artworks {
		a, err := schema.DecodeArtwork(rec)
		if err != nil {
			invalid = multierr.Append(invalid, fmt.Errorf("artworks[%d]: %w", i, err))
			continue
		}
		out.Artworks = append(out.Artworks, a)
	}

	if invalid != nil {
		return nil, invalid
	}
	return &out, nil
}

// ImportFile validates the file and inserts its records in one database
// transaction. A storage failure on any record (duplicate slug, unknown
// artist reference) leaves nothing behind.
func (imp *CatalogImporter) ImportFile(path string) (*Validated, error) {
	validated, err := ValidateFile(path)
	if err != nil {
		return nil, err
	}

	if err := imp.store.SaveBatch(validated.Artists, validated.Categories,
		validated.Collections, validated.Artworks); err != nil {
		return nil, err
	}

	return validated, nil
}
