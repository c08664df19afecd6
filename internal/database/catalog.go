package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atelierhq/atelier/internal/schema"
)

// CatalogStore persists validated catalog entities. Everything passed in is
// expected to have come through the schema decoders already; the store adds
// the constraints the validator leaves to the database (slug and SKU code
// uniqueness, artist/category/collection foreign keys).
type CatalogStore struct {
	db *DB
}

func NewCatalogStore(db *DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// execer is the subset of *sql.DB and *sql.Tx the insert helpers need, so
// the same helper serves both single saves and transactional batches.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

const sqlTimeFormat = "2006-01-02 15:04:05"

// toDBTime converts a validated RFC 3339 string to a driver-friendly value.
func toDBTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t.UTC()
}

func fromDBTime(s string) (string, error) {
	t, err := time.Parse(sqlTimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("failed to parse stored timestamp %q: %w", s, err)
	}
	return t.UTC().Format(time.RFC3339), nil
}

func toJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode json column: %w", err)
	}
	return raw, nil
}

func optionalJSON(v any, present bool) (any, error) {
	if !present {
		return nil, nil
	}
	return toJSON(v)
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullableInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}

func (s *CatalogStore) SaveArtist(a schema.Artist) error {
	return insertArtist(s.db, a)
}

func insertArtist(ex execer, a schema.Artist) error {
	_, err := ex.Exec(`
		INSERT INTO artists (id, slug, name, bio, website_url, instagram, twitter, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.Slug, a.Name, a.Bio, a.WebsiteURL, a.Instagram, a.Twitter,
		toDBTime(a.CreatedAt), toDBTime(a.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert artist %s: %w", a.ID, err)
	}
	return nil
}

func (s *CatalogStore) GetArtist(id string) (schema.Artist, error) {
	var (
		a                    schema.Artist
		bio, website, ig, tw sql.NullString
		createdAt, updatedAt string
	)
	err := s.db.QueryRow(`
		SELECT id, slug, name, bio, website_url, instagram, twitter,
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),
		       DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')
		FROM artists WHERE id = ?
	`, id).Scan(&a.ID, &a.Slug, &a.Name, &bio, &website, &ig, &tw, &createdAt, &updatedAt)
	if err != nil {
		return schema.Artist{}, err
	}
	a.Bio = nullableString(bio)
	a.WebsiteURL = nullableString(website)
	a.Instagram = nullableString(ig)
	a.Twitter = nullableString(tw)
	if a.CreatedAt, err = fromDBTime(createdAt); err != nil {
		return schema.Artist{}, err
	}
	if a.UpdatedAt, err = fromDBTime(updatedAt); err != nil {
		return schema.Artist{}, err
	}
	return a, nil
}

func (s *CatalogStore) SaveCategory(c schema.Category) error {
	return insertCategory(s.db, c)
}

func insertCategory(ex execer, c schema.Category) error {
	_, err := ex.Exec(`
		INSERT INTO categories (id, slug, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, c.ID, c.Slug, c.Name, toDBTime(c.CreatedAt), toDBTime(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert category %s: %w", c.ID, err)
	}
	return nil
}

func (s *CatalogStore) SaveCollection(c schema.Collection) error {
	return insertCollection(s.db, c)
}

func insertCollection(ex execer, c schema.Collection) error {
	_, err := ex.Exec(`
		INSERT INTO collections (id, slug, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.Slug, c.Name, c.Description, toDBTime(c.CreatedAt), toDBTime(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert collection %s: %w", c.ID, err)
	}
	return nil
}

// SaveArtwork writes the artwork with its embedded SKUs and media and its
// category/collection references in one transaction.
func (s *CatalogStore) SaveArtwork(a schema.Artwork) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertArtwork(tx, a); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveBatch inserts every record in a single transaction, so a bulk import
// is all-or-nothing: a failure on any record rolls the whole batch back.
// Artists, categories and collections go first so artwork references
// resolve.
func (s *CatalogStore) SaveBatch(artists []schema.Artist, categories []schema.Category, collections []schema.Collection, artworks []schema.Artwork) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertCatalogBatch(tx, artists, categories, collections, artworks); err != nil {
		return err
	}
	return tx.Commit()
}

func insertCatalogBatch(ex execer, artists []schema.Artist, categories []schema.Category, collections []schema.Collection, artworks []schema.Artwork) error {
	for _, a := range artists {
		if err := insertArtist(ex, a); err != nil {
			return err
		}
	}
	for _, c := range categories {
		if err := insertCategory(ex, c); err != nil {
			return err
		}
	}
	for _, c := range collections {
		if err := insertCollection(ex, c); err != nil {
			return err
		}
	}
	for _, a := range artworks {
		if err := insertArtwork(ex, a); err != nil {
			return err
		}
	}
	return nil
}

func insertArtwork(ex execer, a schema.Artwork) error {
	materials, err := toJSON(a.Materials)
	if err != nil {
		return err
	}
	tags, err := toJSON(a.Tags)
	if err != nil {
		return err
	}
	dimensions, err := optionalJSON(a.Dimensions, a.Dimensions != nil)
	if err != nil {
		return err
	}

	_, err = ex.Exec(`
		INSERT INTO artworks (id, artist_id, title, description, year, materials, dimensions, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.ArtistID, a.Title, a.Description, a.Year, materials, dimensions, tags,
		toDBTime(a.CreatedAt), toDBTime(a.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert artwork %s: %w", a.ID, err)
	}

	for _, categoryID := range a.CategoryIDs {
		if _, err := ex.Exec(`
			INSERT INTO artwork_categories (artwork_id, category_id) VALUES (?, ?)
		`, a.ID, categoryID); err != nil {
			return fmt.Errorf("failed to link artwork %s to category %s: %w", a.ID, categoryID, err)
		}
	}
	for _, collectionID := range a.CollectionIDs {
		if _, err := ex.Exec(`
			INSERT INTO artwork_collections (artwork_id, collection_id) VALUES (?, ?)
		`, a.ID, collectionID); err != nil {
			return fmt.Errorf("failed to link artwork %s to collection %s: %w", a.ID, collectionID, err)
		}
	}

	for i, m := range a.Media {
		if _, err := ex.Exec(`
			INSERT INTO media_assets (id, artwork_id, position, kind, public_id, alt, width, height)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, m.ID, a.ID, i, string(m.Kind), m.PublicID, m.Alt, m.Width, m.Height); err != nil {
			return fmt.Errorf("failed to insert media asset %s: %w", m.ID, err)
		}
	}

	for _, sku := range a.Skus {
		var compareCurrency, compareAmount any
		if sku.CompareAtPrice != nil {
			compareCurrency = sku.CompareAtPrice.Currency
			compareAmount = sku.CompareAtPrice.Amount
		}
		if _, err := ex.Exec(`
			INSERT INTO skus (id, artwork_id, sku, is_original, is_digital, edition_size, stock_quantity,
			                  price_currency, price_amount, compare_at_currency, compare_at_amount,
			                  created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, sku.ID, sku.ArtworkID, sku.Code, sku.IsOriginal, sku.IsDigital, sku.EditionSize, sku.StockQuantity,
			sku.Price.Currency, sku.Price.Amount, compareCurrency, compareAmount,
			toDBTime(sku.CreatedAt), toDBTime(sku.UpdatedAt)); err != nil {
			return fmt.Errorf("failed to insert sku %s: %w", sku.ID, err)
		}
	}

	return nil
}

func (s *CatalogStore) GetArtwork(id string) (schema.Artwork, error) {
	var (
		a                    schema.Artwork
		description          sql.NullString
		year                 sql.NullInt64
		materials, tags      []byte
		dimensions           []byte
		createdAt, updatedAt string
	)
	err := s.db.QueryRow(`
		SELECT id, artist_id, title, description, year, materials, dimensions, tags,
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),
		       DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')
		FROM artworks WHERE id = ?
	`, id).Scan(&a.ID, &a.ArtistID, &a.Title, &description, &year, &materials, &dimensions, &tags,
		&createdAt, &updatedAt)
	if err != nil {
		return schema.Artwork{}, err
	}
	a.Description = nullableString(description)
	a.Year = nullableInt(year)
	if err := json.Unmarshal(materials, &a.Materials); err != nil {
		return schema.Artwork{}, fmt.Errorf("failed to decode materials for artwork %s: %w", id, err)
	}
	if err := json.Unmarshal(tags, &a.Tags); err != nil {
		return schema.Artwork{}, fmt.Errorf("failed to decode tags for artwork %s: %w", id, err)
	}
	if dimensions != nil {
		var d schema.Dimensions
		if err := json.Unmarshal(dimensions, &d); err != nil {
			return schema.Artwork{}, fmt.Errorf("failed to decode dimensions for artwork %s: %w", id, err)
		}
		a.Dimensions = &d
	}
	if a.CreatedAt, err = fromDBTime(createdAt); err != nil {
		return schema.Artwork{}, err
	}
	if a.UpdatedAt, err = fromDBTime(updatedAt); err != nil {
		return schema.Artwork{}, err
	}

	if a.CategoryIDs, err = s.linkedIDs("artwork_categories", "category_id", id); err != nil {
		return schema.Artwork{}, err
	}
	if a.CollectionIDs, err = s.linkedIDs("artwork_collections", "collection_id", id); err != nil {
		return schema.Artwork{}, err
	}
	if a.Media, err = s.artworkMedia(id); err != nil {
		return schema.Artwork{}, err
	}
	if a.Skus, err = s.artworkSkus(id); err != nil {
		return schema.Artwork{}, err
	}
	return a, nil
}

func (s *CatalogStore) linkedIDs(table, column, artworkID string) ([]string, error) {
	rows, err := s.db.Query(
		fmt.Sprintf("SELECT %s FROM %s WHERE artwork_id = ? ORDER BY %s", column, table, column),
		artworkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *CatalogStore) artworkMedia(artworkID string) ([]schema.MediaAsset, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, public_id, alt, width, height
		FROM media_assets WHERE artwork_id = ? ORDER BY position
	`, artworkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	media := []schema.MediaAsset{}
	for rows.Next() {
		var (
			m             schema.MediaAsset
			kind          string
			alt           sql.NullString
			width, height sql.NullInt64
		)
		if err := rows.Scan(&m.ID, &kind, &m.PublicID, &alt, &width, &height); err != nil {
			return nil, err
		}
		m.Kind = schema.MediaKind(kind)
		m.Alt = nullableString(alt)
		m.Width = nullableInt(width)
		m.Height = nullableInt(height)
		media = append(media, m)
	}
	return media, rows.Err()
}

func (s *CatalogStore) artworkSkus(artworkID string) ([]schema.Sku, error) {
	rows, err := s.db.Query(`
		SELECT id, artwork_id, sku, is_original, is_digital, edition_size, stock_quantity,
		       price_currency, price_amount, compare_at_currency, compare_at_amount,
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),
		       DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')
		FROM skus WHERE artwork_id = ? ORDER BY sku
	`, artworkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skus := []schema.Sku{}
	for rows.Next() {
		var (
			sku                  schema.Sku
			editionSize, stock   sql.NullInt64
			compareCurrency      sql.NullString
			compareAmount        sql.NullInt64
			createdAt, updatedAt string
		)
		if err := rows.Scan(&sku.ID, &sku.ArtworkID, &sku.Code, &sku.IsOriginal, &sku.IsDigital,
			&editionSize, &stock, &sku.Price.Currency, &sku.Price.Amount,
			&compareCurrency, &compareAmount, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		sku.EditionSize = nullableInt(editionSize)
		sku.StockQuantity = nullableInt(stock)
		if compareCurrency.Valid {
			sku.CompareAtPrice = &schema.Money{
				Currency: compareCurrency.String,
				Amount:   compareAmount.Int64,
			}
		}
		var err error
		if sku.CreatedAt, err = fromDBTime(createdAt); err != nil {
			return nil, err
		}
		if sku.UpdatedAt, err = fromDBTime(updatedAt); err != nil {
			return nil, err
		}
		skus = append(skus, sku)
	}
	return skus, rows.Err()
}
