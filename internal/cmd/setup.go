package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelierhq/atelier/internal/config"
	"github.com/atelierhq/atelier/internal/database"
	"github.com/atelierhq/atelier/internal/schema"
)

var (
	dropFirst bool
	skipData  bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up the catalog database schema and sample data",
	Long: `Creates the catalog tables (artists, artworks, skus, categories,
collections, customers, carts, orders) and populates them with a small
sample catalog.

The sample data is useful for trying out the API locally and for manual
testing of the validation endpoints.`,
	RunE: setupCatalog,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing catalog tables before creating")
	setupCmd.Flags().BoolVar(&skipData, "schema-only", false, "Create schema only, skip sample data")
}

func setupCatalog(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up catalog database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Drop tables if requested
	if dropFirst {
		fmt.Println("🗑️  Dropping existing catalog tables...")
		if err := db.DropCatalogSchema(); err != nil {
			return fmt.Errorf("failed to drop catalog schema: %w", err)
		}
	}

	// Create schema
	fmt.Println("📋 Creating catalog schema...")
	if err := db.SetupCatalogSchema(); err != nil {
		return fmt.Errorf("failed to setup catalog schema: %w", err)
	}

	if !skipData {
		fmt.Println("📊 Populating with sample catalog...")
		if err := populateSampleCatalog(db); err != nil {
			return fmt.Errorf("failed to populate sample catalog: %w", err)
		}
	}

	fmt.Println("✅ Catalog database setup complete!")
	return nil
}

const (
	sampleCreatedAt = "2024-01-15T10:30:00Z"
	sampleUpdatedAt = "2024-01-15T10:30:00Z"
)

func populateSampleCatalog(db *database.DB) error {
	store := database.NewCatalogStore(db)

	fmt.Println("   🎨 Creating artists...")
	artists := []schema.Artist{
		{
			ID:         "0a4ec2a6-9d17-4b83-8f5e-1c2d3e4f5a6b",
			Slug:       "mira-kovacs",
			Name:       "Mira Kovacs",
			Bio:        strPtr("Painter working in oil and cold wax on linen."),
			WebsiteURL: strPtr("https://mirakovacs.example"),
			CreatedAt:  sampleCreatedAt,
			UpdatedAt:  sampleUpdatedAt,
		},
		{
			ID:        "1b5fd3b7-ae28-4c94-9a6f-2d3e4f5a6b7c",
			Slug:      "jonas-eld",
			Name:      "Jonas Eld",
			Instagram: strPtr("https://instagram.com/jonaseld"),
			CreatedAt: sampleCreatedAt,
			UpdatedAt: sampleUpdatedAt,
		},
	}
	for _, a := range artists {
		if err := store.SaveArtist(a); err != nil {
			return err
		}
	}

	fmt.Println("   🗂  Creating categories and collections...")
	categories := []schema.Category{
		{ID: "2c6ae4c8-bf39-4da5-ab70-3e4f5a6b7c8d", Slug: "painting", Name: "Painting",
			CreatedAt: sampleCreatedAt, UpdatedAt: sampleUpdatedAt},
		{ID: "3d7bf5d9-c04a-4eb6-bc81-4f5a6b7c8d9e", Slug: "works-on-paper", Name: "Works on Paper",
			CreatedAt: sampleCreatedAt, UpdatedAt: sampleUpdatedAt},
	}
	for _, c := range categories {
		if err := store.SaveCategory(c); err != nil {
			return err
		}
	}
	collection := schema.Collection{
		ID:          "4e8c06ea-d15b-4fc7-8d92-5a6b7c8d9e0f",
		Slug:        "winter-salon",
		Name:        "Winter Salon",
		Description: strPtr("Curated picks for the winter season."),
		CreatedAt:   sampleCreatedAt,
		UpdatedAt:   sampleUpdatedAt,
	}
	if err := store.SaveCollection(collection); err != nil {
		return err
	}

	fmt.Println("   🖼  Creating artworks...")
	artworks := []schema.Artwork{
		{
			ID:            "5f9d17fb-e26c-4ad8-9ea3-6b7c8d9e0f1a",
			ArtistID:      artists[0].ID,
			Title:         "Blue Study",
			Description:   strPtr("Oil and cold wax on linen."),
			Year:          intPtr(2023),
			Materials:     []string{"oil", "cold wax", "linen"},
			Dimensions:    &schema.Dimensions{Width: 40, Height: 60, Unit: schema.UnitCentimeters},
			Tags:          []string{"abstract", "blue"},
			CategoryIDs:   []string{categories[0].ID},
			CollectionIDs: []string{collection.ID},
			Media: []schema.MediaAsset{
				{
					ID:       "60ae28fc-f37d-4be9-8fb4-7c8d9e0f1a2b",
					Kind:     schema.MediaImage,
					PublicID: "artworks/blue-study",
					Alt:      strPtr("Blue Study, oil on linen"),
					Width:    intPtr(1600),
					Height:   intPtr(2400),
				},
			},
			Skus: []schema.Sku{
				{
					ID:            "71bf390d-048e-4cfa-aac5-8d9e0f1a2b3c",
					ArtworkID:     "5f9d17fb-e26c-4ad8-9ea3-6b7c8d9e0f1a",
					Code:          "BLUE-STUDY-ORIG",
					IsOriginal:    true,
					StockQuantity: intPtr(1),
					Price:         schema.Money{Currency: "EUR", Amount: 420000},
					CreatedAt:     sampleCreatedAt,
					UpdatedAt:     sampleUpdatedAt,
				},
				{
					ID:            "82c04a1e-159f-4d0b-8bd6-9e0f1a2b3c4d",
					ArtworkID:     "5f9d17fb-e26c-4ad8-9ea3-6b7c8d9e0f1a",
					Code:          "BLUE-STUDY-PRINT-A2",
					EditionSize:   intPtr(50),
					StockQuantity: intPtr(38),
					Price:         schema.Money{Currency: "EUR", Amount: 18000},
					CreatedAt:     sampleCreatedAt,
					UpdatedAt:     sampleUpdatedAt,
				},
			},
			CreatedAt: sampleCreatedAt,
			UpdatedAt: sampleUpdatedAt,
		},
		{
			ID:          "93d15b2f-26a0-4e1c-9ce7-0f1a2b3c4d5e",
			ArtistID:    artists[1].ID,
			Title:       "Harbor Light",
			Year:        intPtr(2024),
			Materials:   []string{"gouache", "paper"},
			Tags:        []string{"landscape"},
			CategoryIDs: []string{categories[1].ID},
			Media:       []schema.MediaAsset{},
			Skus: []schema.Sku{
				{
					ID:            "a4e26c30-37b1-4f2d-8df8-1a2b3c4d5e6f",
					ArtworkID:     "93d15b2f-26a0-4e1c-9ce7-0f1a2b3c4d5e",
					Code:          "HARBOR-LIGHT-DL",
					IsDigital:     true,
					StockQuantity: nil,
					Price:         schema.Money{Currency: "EUR", Amount: 2500},
					CreatedAt:     sampleCreatedAt,
					UpdatedAt:     sampleUpdatedAt,
				},
			},
			CreatedAt: sampleCreatedAt,
			UpdatedAt: sampleUpdatedAt,
		},
	}
	for _, a := range artworks {
		if err := store.SaveArtwork(a); err != nil {
			return err
		}
	}

	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
