package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/schema"
)

const (
	batchArtistID     = "0a4ec2a6-9d17-4b83-8f5e-1c2d3e4f5a6b"
	batchCategoryID   = "2c6ae4c8-bf39-4da5-ab70-3e4f5a6b7c8d"
	batchCollectionID = "4e8c06ea-d15b-4fc7-8d92-5a6b7c8d9e0f"
	batchArtworkID    = "5f9d17fb-e26c-4ad8-9ea3-6b7c8d9e0f1a"
	batchTimestamp    = "2024-01-15T10:30:00Z"
)

type fakeResult struct{}

func (fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (fakeResult) RowsAffected() (int64, error) { return 1, nil }

// scriptedExecer counts Exec calls and fails on a chosen one, standing in
// for a transaction that hits a constraint partway through a batch.
type scriptedExecer struct {
	calls  int
	failOn int
	err    error
}

func (e *scriptedExecer) Exec(query string, args ...any) (sql.Result, error) {
	e.calls++
	if e.failOn != 0 && e.calls == e.failOn {
		return nil, e.err
	}
	return fakeResult{}, nil
}

func batchArtist(id, slug string) schema.Artist {
	return schema.Artist{
		ID:        id,
		Slug:      slug,
		Name:      "Mira Kovacs",
		CreatedAt: batchTimestamp,
		UpdatedAt: batchTimestamp,
	}
}

func TestInsertCatalogBatchInsertsEveryRecord(t *testing.T) {
	artwork := schema.Artwork{
		ID:            batchArtworkID,
		ArtistID:      batchArtistID,
		Title:         "Blue Study",
		Materials:     []string{"oil"},
		Tags:          []string{},
		CategoryIDs:   []string{batchCategoryID},
		CollectionIDs: []string{batchCollectionID},
		Media: []schema.MediaAsset{
			{ID: batchCategoryID, Kind: schema.MediaImage, PublicID: "artworks/blue-study"},
		},
		Skus: []schema.Sku{
			{
				ID:        batchCollectionID,
				ArtworkID: batchArtworkID,
				Code:      "BLUE-STUDY-ORIG",
				Price:     schema.Money{Currency: "EUR", Amount: 420000},
				CreatedAt: batchTimestamp,
				UpdatedAt: batchTimestamp,
			},
		},
		CreatedAt: batchTimestamp,
		UpdatedAt: batchTimestamp,
	}

	ex := &scriptedExecer{}
	err := insertCatalogBatch(ex,
		[]schema.Artist{batchArtist(batchArtistID, "mira-kovacs")},
		[]schema.Category{{ID: batchCategoryID, Slug: "painting", Name: "Painting",
			CreatedAt: batchTimestamp, UpdatedAt: batchTimestamp}},
		[]schema.Collection{{ID: batchCollectionID, Slug: "winter-salon", Name: "Winter Salon",
			CreatedAt: batchTimestamp, UpdatedAt: batchTimestamp}},
		[]schema.Artwork{artwork})
	require.NoError(t, err)

	// artist + category + collection + artwork + category link +
	// collection link + media asset + sku
	assert.Equal(t, 8, ex.calls)
}

func TestInsertCatalogBatchStopsAtFirstFailure(t *testing.T) {
	ex := &scriptedExecer{
		failOn: 2,
		err:    errors.New("Duplicate entry 'mira-kovacs' for key 'uk_artist_slug'"),
	}

	err := insertCatalogBatch(ex, []schema.Artist{
		batchArtist(batchArtistID, "mira-kovacs"),
		batchArtist(batchArtworkID, "mira-kovacs"),
		batchArtist(batchCategoryID, "jonas-eld"),
	}, nil, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert artist "+batchArtworkID)
	// Nothing after the failing record is attempted; the caller's
	// transaction rolls back what came before.
	assert.Equal(t, 2, ex.calls)
}
