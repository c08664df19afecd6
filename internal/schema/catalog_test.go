package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCreatedAt = "2024-01-15T10:30:00Z"
	testUpdatedAt = "2024-02-01T08:00:00Z"
)

func validSkuLiteral(id, artworkID string) string {
	return `{
		"id": "` + id + `",
		"artworkId": "` + artworkID + `",
		"sku": "BLUE-STUDY-PRINT-A2",
		"editionSize": 50,
		"stockQuantity": 12,
		"price": {"currency": "USD", "amount": 18000},
		"createdAt": "` + testCreatedAt + `",
		"updatedAt": "` + testUpdatedAt + `"
	}`
}

func TestDecodeArtist(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		a, err := DecodeArtist(jsonValue(t, `{
			"id": "`+testID+`",
			"slug": "mira-kovacs",
			"name": "Mira Kovacs",
			"bio": "Painter working in oil and cold wax.",
			"websiteUrl": "https://mirakovacs.example",
			"instagram": "https://instagram.com/mirakovacs",
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "mira-kovacs", a.Slug)
		require.NotNil(t, a.WebsiteURL)
		assert.Nil(t, a.Twitter)
	})

	t.Run("minimal record", func(t *testing.T) {
		a, err := DecodeArtist(jsonValue(t, `{
			"id": "`+testID+`",
			"slug": "mira-kovacs",
			"name": "Mira Kovacs",
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		require.NoError(t, err)
		assert.Nil(t, a.Bio)
	})

	t.Run("bad website url", func(t *testing.T) {
		_, err := DecodeArtist(jsonValue(t, `{
			"id": "`+testID+`",
			"slug": "mira-kovacs",
			"name": "Mira Kovacs",
			"websiteUrl": "not a url",
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		assert.Equal(t, []string{"websiteUrl"}, violationPaths(t, err))
	})

	t.Run("everything missing", func(t *testing.T) {
		_, err := DecodeArtist(jsonValue(t, `{}`))
		assert.Equal(t,
			[]string{"id", "slug", "name", "createdAt", "updatedAt"},
			violationPaths(t, err))
	})
}

func TestDecodeCategory(t *testing.T) {
	input := jsonValue(t, `{
		"id": "`+testID+`",
		"slug": "blue",
		"name": "Blue",
		"createdAt": "`+testCreatedAt+`",
		"updatedAt": "`+testUpdatedAt+`"
	}`)
	c, err := DecodeCategory(input)
	require.NoError(t, err)
	assert.Equal(t, Category{
		ID:        testID,
		Slug:      "blue",
		Name:      "Blue",
		CreatedAt: testCreatedAt,
		UpdatedAt: testUpdatedAt,
	}, c)
}

func TestDecodeCollection(t *testing.T) {
	c, err := DecodeCollection(jsonValue(t, `{
		"id": "`+testID+`",
		"slug": "winter-salon",
		"name": "Winter Salon",
		"description": "",
		"createdAt": "`+testCreatedAt+`",
		"updatedAt": "`+testUpdatedAt+`"
	}`))
	require.NoError(t, err)
	// description has no minimum length, empty string is allowed
	require.NotNil(t, c.Description)
	assert.Equal(t, "", *c.Description)
}

func TestDecodeSku(t *testing.T) {
	t.Run("flags default to false", func(t *testing.T) {
		s, err := DecodeSku(jsonValue(t, validSkuLiteral(testID, testID2)))
		require.NoError(t, err)
		assert.False(t, s.IsOriginal)
		assert.False(t, s.IsDigital)
		assert.Equal(t, "BLUE-STUDY-PRINT-A2", s.Code)
		require.NotNil(t, s.StockQuantity)
		assert.Equal(t, 12, *s.StockQuantity)
	})

	t.Run("stock quantity boundaries", func(t *testing.T) {
		tests := []struct {
			name  string
			stock string
			ok    bool
			want  *int
		}{
			{"zero is valid", `0`, true, intPtr(0)},
			{"negative fails", `-1`, false, nil},
			{"null means unlimited", `null`, true, nil},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s, err := DecodeSku(jsonValue(t, `{
					"id": "`+testID+`",
					"artworkId": "`+testID2+`",
					"sku": "BLUE-STUDY-ORIG",
					"isOriginal": true,
					"stockQuantity": `+tt.stock+`,
					"price": {"currency": "EUR", "amount": 420000},
					"createdAt": "`+testCreatedAt+`",
					"updatedAt": "`+testUpdatedAt+`"
				}`))
				if tt.ok {
					require.NoError(t, err)
					assert.Equal(t, tt.want, s.StockQuantity)
				} else {
					assert.Equal(t, []string{"stockQuantity"}, violationPaths(t, err))
				}
			})
		}
	})

	t.Run("stock quantity may be null but not absent", func(t *testing.T) {
		_, err := DecodeSku(jsonValue(t, `{
			"id": "`+testID+`",
			"artworkId": "`+testID2+`",
			"sku": "BLUE-STUDY-DL",
			"isDigital": true,
			"price": {"currency": "USD", "amount": 2500},
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		assert.Equal(t, []string{"stockQuantity"}, violationPaths(t, err))
	})

	t.Run("digital sku with stock is accepted", func(t *testing.T) {
		// The digital/stock cross-field rule is deferred to the business
		// layer; the shape permits it.
		s, err := DecodeSku(jsonValue(t, `{
			"id": "`+testID+`",
			"artworkId": "`+testID2+`",
			"sku": "BLUE-STUDY-DL",
			"isDigital": true,
			"stockQuantity": 5,
			"price": {"currency": "USD", "amount": 2500},
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		require.NoError(t, err)
		assert.True(t, s.IsDigital)
	})

	t.Run("edition size must be positive", func(t *testing.T) {
		_, err := DecodeSku(jsonValue(t, `{
			"id": "`+testID+`",
			"artworkId": "`+testID2+`",
			"sku": "X",
			"editionSize": 0,
			"stockQuantity": null,
			"price": {"currency": "USD", "amount": 100},
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		assert.Equal(t, []string{"editionSize"}, violationPaths(t, err))
	})
}

func TestDecodeArtwork(t *testing.T) {
	t.Run("defaults materialized", func(t *testing.T) {
		a, err := DecodeArtwork(jsonValue(t, `{
			"id": "`+testID+`",
			"artistId": "`+testID2+`",
			"title": "Blue Study",
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		require.NoError(t, err)
		assert.Equal(t, []string{}, a.Materials)
		assert.Equal(t, []string{}, a.Tags)
		assert.Equal(t, []string{}, a.CategoryIDs)
		assert.Equal(t, []string{}, a.CollectionIDs)
		assert.Equal(t, []MediaAsset{}, a.Media)
		assert.Equal(t, []Sku{}, a.Skus)
		assert.Nil(t, a.Dimensions)
		assert.Nil(t, a.Year)
	})

	t.Run("full record", func(t *testing.T) {
		a, err := DecodeArtwork(jsonValue(t, `{
			"id": "`+testID+`",
			"artistId": "`+testID2+`",
			"title": "Blue Study",
			"description": "Oil on canvas.",
			"year": 2023,
			"materials": ["oil", "canvas"],
			"dimensions": {"width": 40, "height": 60, "unit": "cm"},
			"tags": ["abstract", "blue"],
			"categoryIds": ["`+testID3+`"],
			"media": [{"id": "`+testID3+`", "kind": "image", "publicId": "artworks/blue-study"}],
			"skus": [`+validSkuLiteral(testID3, testID)+`],
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"oil", "canvas"}, a.Materials)
		require.NotNil(t, a.Year)
		assert.Equal(t, 2023, *a.Year)
		require.Len(t, a.Skus, 1)
		assert.Equal(t, int64(18000), a.Skus[0].Price.Amount)
	})

	t.Run("nested violations carry element paths", func(t *testing.T) {
		_, err := DecodeArtwork(jsonValue(t, `{
			"id": "`+testID+`",
			"artistId": "`+testID2+`",
			"title": "Blue Study",
			"tags": ["blue", ""],
			"categoryIds": ["not-a-uuid"],
			"skus": [`+validSkuLiteral(testID3, testID)+`, {
				"id": "`+testID3+`",
				"artworkId": "`+testID+`",
				"sku": "BAD",
				"stockQuantity": 1,
				"price": {"currency": "USD", "amount": -50},
				"createdAt": "`+testCreatedAt+`",
				"updatedAt": "`+testUpdatedAt+`"
			}],
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		assert.Equal(t, []string{
			"tags[1]",
			"categoryIds[0]",
			"skus[1].price.amount",
		}, violationPaths(t, err))
	})
}

// Re-validating a validated artwork succeeds and is value-identical.
func TestArtworkRevalidationIsIdempotent(t *testing.T) {
	first, err := DecodeArtwork(jsonValue(t, `{
		"id": "`+testID+`",
		"artistId": "`+testID2+`",
		"title": "Blue Study",
		"materials": ["oil"],
		"skus": [`+validSkuLiteral(testID3, testID)+`],
		"createdAt": "`+testCreatedAt+`",
		"updatedAt": "`+testUpdatedAt+`"
	}`))
	require.NoError(t, err)

	raw, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTripped any
	require.NoError(t, json.Unmarshal(raw, &roundTripped))

	second, err := DecodeArtwork(roundTripped)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func intPtr(n int) *int { return &n }
