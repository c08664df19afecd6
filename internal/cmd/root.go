package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Atelier - Art Catalog & Commerce Service",
	Long: `Atelier manages the catalog data model for an online art gallery:
artists, artworks, SKUs, categories, collections, customers, carts and
orders. Every record entering the system is validated against the catalog
schema before it is stored.

The service can run as an HTTP API, or be used via CLI commands to set up
the database, import catalog files and validate documents.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
