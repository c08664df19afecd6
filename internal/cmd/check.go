package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atelierhq/atelier/internal/config"
	"github.com/atelierhq/atelier/internal/database"
)

var checkLast int

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the catalog database contents",
	Long: `Shows row counts for every catalog table and the most recently
updated artworks. Useful for verifying that setup or import ran
correctly.`,
	RunE: checkCatalog,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVar(&checkLast, "last", 5, "Number of recent artworks to show")
}

type artworkSummary struct {
	ID        string
	Title     string
	Artist    string
	SkuCount  int
	UpdatedAt string
}

func checkCatalog(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Checking catalog database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	tables := []string{
		"artists", "categories", "collections", "artworks",
		"skus", "customers", "carts", "orders",
	}

	fmt.Println("\n📋 Table counts:")
	total := 0
	for _, table := range tables {
		count, err := countRows(db, table)
		if err != nil {
			if strings.Contains(err.Error(), "doesn't exist") {
				fmt.Println("⚠️  Catalog tables not found. Run 'atelier setup' first.")
				return nil
			}
			return fmt.Errorf("failed to count %s: %w", table, err)
		}
		fmt.Printf("   %-12s %d\n", table, count)
		total += count
	}

	if total == 0 {
		fmt.Println("\n📭 Catalog is empty")
		fmt.Println("💡 Try: atelier setup, or atelier import <file>")
		return nil
	}

	artworks, err := recentArtworks(db, checkLast)
	if err != nil {
		return fmt.Errorf("failed to fetch recent artworks: %w", err)
	}

	if len(artworks) > 0 {
		fmt.Printf("\n🖼  Recently updated artworks (showing %d):\n", len(artworks))
		for i, a := range artworks {
			fmt.Printf("   %d. %s by %s (%d sku%s, updated %s)\n",
				i+1, a.Title, a.Artist, a.SkuCount, pluralize(a.SkuCount), a.UpdatedAt)
		}
	}

	return nil
}

func countRows(db *database.DB, table string) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	return count, err
}

func recentArtworks(db *database.DB, limit int) ([]artworkSummary, error) {
	query := `
		SELECT a.id, a.title, ar.name,
		       (SELECT COUNT(*) FROM skus s WHERE s.artwork_id = a.id),
		       DATE_FORMAT(a.updated_at, '%Y-%m-%d %H:%i:%s')
		FROM artworks a
		JOIN artists ar ON ar.id = a.artist_id
		ORDER BY a.updated_at DESC
		LIMIT ?`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []artworkSummary
	for rows.Next() {
		var a artworkSummary
		if err := rows.Scan(&a.ID, &a.Title, &a.Artist, &a.SkuCount, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}
