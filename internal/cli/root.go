// Package cli defines the cobra command tree for stay-finder.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/stay-finder/internal/client"
	"github.com/evcraddock/stay-finder/internal/db"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sf",
		Short:         "Browse and filter a catalog of stays",
		Long:          "A tool to browse a catalog of stays. Import a catalog, filter it by location and guests from the CLI, or serve the listing page.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.stay-finder/stays.db)")

	root.AddCommand(
		newImportCmd(),
		newListCmd(),
		newLocationsCmd(),
		newServeCmd(),
		newStatusCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// dbPath returns the --db flag or the default database path.
func dbPath() (string, error) {
	if flagDB != "" {
		return flagDB, nil
	}
	return db.DefaultPath()
}

// openDB opens the database for writing.
func openDB() (*sql.DB, error) {
	path, err := dbPath()
	if err != nil {
		return nil, err
	}
	return db.Open(path)
}

// openCatalog opens an already imported catalog for reading.
func openCatalog() (*sql.DB, error) {
	path, err := dbPath()
	if err != nil {
		return nil, err
	}
	return db.OpenReadOnly(path)
}

// newAPIClient creates an HTTP client for the stay-finder API.
func newAPIClient() *client.Client {
	return client.New(getServerURL())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
