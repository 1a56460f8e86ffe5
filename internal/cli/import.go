package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/evcraddock/stay-finder/internal/stay"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a catalog of stays",
		Long:  "Read a JSON array of stays, validate every record, and replace the stored catalog with it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0])
		},
	}
}

func runImport(cmd *cobra.Command, path string) error {
	n, err := importCatalog(path)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]int{"imported": n})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d stays from %s\n", n, path)
	return nil
}

// importCatalog loads the catalog file into the database and returns how
// many stays it held.
func importCatalog(path string) (int, error) {
	catalog, err := stay.LoadFile(path)
	if err != nil {
		return 0, err
	}

	database, err := openDB()
	if err != nil {
		return 0, err
	}
	defer closeDB(database)

	source, err := filepath.Abs(path)
	if err != nil {
		source = path
	}

	if err := stay.NewRepository(database).Replace(catalog, source); err != nil {
		return 0, fmt.Errorf("storing catalog: %w", err)
	}

	return len(catalog), nil
}
