package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateFileAcceptsValidCatalog(t *testing.T) {
	path := writeCatalogFile(t, `{
		"artists": [
			{
				"id": "3f1d9a2e-8b64-4c1a-9d37-2f5e8a0c4b61",
				"slug": "mira-kovacs",
				"name": "Mira Kovacs",
				"createdAt": "2024-01-15T10:30:00Z",
				"updatedAt": "2024-01-15T10:30:00Z"
			}
		],
		"categories": [
			{
				"id": "7c2e4b90-1a5f-4d83-b6e2-9f0a3c7d5e14",
				"slug": "painting",
				"name": "Painting",
				"createdAt": "2024-01-15T10:30:00Z",
				"updatedAt": "2024-01-15T10:30:00Z"
			}
		],
		"artworks": [
			{
				"id": "a8d61f3c-5e27-4b90-8c14-d7f2e9a0b358",
				"artistId": "3f1d9a2e-8b64-4c1a-9d37-2f5e8a0c4b61",
				"title": "Blue Study",
				"createdAt": "2024-01-15T10:30:00Z",
				"updatedAt": "2024-01-15T10:30:00Z"
			}
		]
	}`)

	validated, err := ValidateFile(path)
	require.NoError(t, err)

	assert.Len(t, validated.Artists, 1)
	assert.Len(t, validated.Categories, 1)
	assert.Empty(t, validated.Collections)
	assert.Len(t, validated.Artworks, 1)
	assert.Equal(t, 3, validated.Count())

	assert.Equal(t, "mira-kovacs", validated.Artists[0].Slug)
	assert.Equal(t, "Blue Study", validated.Artworks[0].Title)
}

func TestValidateFileReportsEveryBadRecord(t *testing.T) {
	path := writeCatalogFile(t, `{
		"artists": [
			{
				"id": "3f1d9a2e-8b64-4c1a-9d37-2f5e8a0c4b61",
				"slug": "mira-kovacs",
				"name": "Mira Kovacs",
				"createdAt": "2024-01-15T10:30:00Z",
				"updatedAt": "2024-01-15T10:30:00Z"
			},
			{
				"id": "not-a-uuid",
				"slug": "",
				"name": "Broken"
			}
		],
		"artworks": [
			{
				"id": "a8d61f3c-5e27-4b90-8c14-d7f2e9a0b358",
				"title": "No Artist"
			}
		]
	}`)

	validated, err := ValidateFile(path)
	require.Error(t, err)
	assert.Nil(t, validated)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "artists[1]:")
	assert.Contains(t, errs[0].Error(), "id: must be a canonical UUID")
	assert.Contains(t, errs[1].Error(), "artworks[0]:")
	assert.Contains(t, errs[1].Error(), "artistId: required field missing")
}

func TestValidateFileRejectsMalformedJSON(t *testing.T) {
	path := writeCatalogFile(t, `{"artists": [`)

	_, err := ValidateFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalog file")
}

func TestValidateFileMissingFile(t *testing.T) {
	_, err := ValidateFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}
