package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/atelierhq/atelier/internal/ingest"
	"github.com/atelierhq/atelier/internal/schema"
)

var validateEntity string

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a JSON document against an entity schema",
	Long: `Validates a single JSON document against one of the catalog
entity schemas and prints every violation with its field path.

Without --entity the file is treated as a bulk catalog file with
artists, categories, collections and artworks sections.`,
	Args: cobra.ExactArgs(1),
	RunE: validateDocument,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateEntity, "entity", "", "Entity schema to validate against (artist, artwork, sku, customer, cart, order, ...)")
}

var cliDecoders = map[string]func(any) error{
	"artist":      func(v any) error { _, err := schema.DecodeArtist(v); return err },
	"category":    func(v any) error { _, err := schema.DecodeCategory(v); return err },
	"collection":  func(v any) error { _, err := schema.DecodeCollection(v); return err },
	"sku":         func(v any) error { _, err := schema.DecodeSku(v); return err },
	"artwork":     func(v any) error { _, err := schema.DecodeArtwork(v); return err },
	"address":     func(v any) error { _, err := schema.DecodeAddress(v); return err },
	"customer":    func(v any) error { _, err := schema.DecodeCustomer(v); return err },
	"cart":        func(v any) error { _, err := schema.DecodeCart(v); return err },
	"order":       func(v any) error { _, err := schema.DecodeOrder(v); return err },
	"media-asset": func(v any) error { _, err := schema.DecodeMediaAsset(v); return err },
	"money":       func(v any) error { _, err := schema.DecodeMoney(v); return err },
	"dimensions":  func(v any) error { _, err := schema.DecodeDimensions(v); return err },
}

func validateDocument(cmd *cobra.Command, args []string) error {
	path := args[0]

	if validateEntity == "" {
		return validateCatalogFile(path)
	}

	decode, ok := cliDecoders[validateEntity]
	if !ok {
		return fmt.Errorf("unknown entity %q (choose one of: %s)", validateEntity, knownEntities())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	fmt.Printf("🔍 Validating %s as %s...\n", path, validateEntity)

	if err := decode(doc); err != nil {
		var verr *schema.Error
		if errors.As(err, &verr) {
			fmt.Printf("\n❌ %d violation%s found:\n", len(verr.Violations), pluralize(len(verr.Violations)))
			for _, v := range verr.Violations {
				fmt.Printf("   • %s: %s\n", v.Path, v.Rule)
			}
			return fmt.Errorf("document is invalid")
		}
		return err
	}

	fmt.Println("✅ Document is valid")
	return nil
}

func validateCatalogFile(path string) error {
	fmt.Printf("🔍 Validating catalog file %s...\n", path)

	validated, err := ingest.ValidateFile(path)
	if err != nil {
		reportImportErrors(err)
		return fmt.Errorf("catalog file is invalid")
	}

	fmt.Printf("✅ File is valid: %d records\n", validated.Count())
	return nil
}

func knownEntities() string {
	names := make([]string, 0, len(cliDecoders))
	for name := range cliDecoders {
		names = append(names, name)
	}
	sort.Strings(names)

	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}
