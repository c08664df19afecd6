package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/atelierhq/atelier/internal/config"
	"github.com/atelierhq/atelier/internal/database"
	"github.com/atelierhq/atelier/internal/ingest"
)

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a catalog JSON file into the database",
	Long: `Validates every record in a catalog JSON file and inserts the
records into the database. The file may contain artists, categories,
collections and artworks.

If any record is invalid nothing is imported; all violations across the
whole file are reported at once.`,
	Args: cobra.ExactArgs(1),
	RunE: importCatalog,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate the file without writing to the database")
}

func importCatalog(cmd *cobra.Command, args []string) error {
	path := args[0]
	fmt.Printf("📦 Importing catalog file %s...\n", path)

	if importDryRun {
		validated, err := ingest.ValidateFile(path)
		if err != nil {
			reportImportErrors(err)
			return fmt.Errorf("catalog file is invalid")
		}
		fmt.Printf("✅ File is valid: %d records ready to import\n", validated.Count())
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	importer := ingest.NewCatalogImporter(database.NewCatalogStore(db))

	validated, err := importer.ImportFile(path)
	if err != nil {
		reportImportErrors(err)
		return fmt.Errorf("import failed")
	}

	fmt.Printf("\n✅ Import complete!\n")
	fmt.Printf("   🎨 Artists:     %d\n", len(validated.Artists))
	fmt.Printf("   🗂  Categories:  %d\n", len(validated.Categories))
	fmt.Printf("   📚 Collections: %d\n", len(validated.Collections))
	fmt.Printf("   🖼  Artworks:    %d\n", len(validated.Artworks))

	return nil
}

func reportImportErrors(err error) {
	errs := multierr.Errors(err)
	fmt.Printf("\n❌ Found %d invalid record%s:\n", len(errs), pluralize(len(errs)))
	for _, e := range errs {
		fmt.Printf("   • %v\n", e)
	}
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
