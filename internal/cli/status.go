package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/evcraddock/stay-finder/internal/db"
	"github.com/evcraddock/stay-finder/internal/stay"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the local catalog and check the connection to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			imp, err := lastImport()
			if err != nil {
				return err
			}
			printCatalogStatus(out, imp)

			serverURL := getServerURL()
			fmt.Fprintf(out, "Server: %s\n", serverURL)

			if err := newAPIClient().Health(); err != nil {
				fmt.Fprintln(out, "Status: unreachable")
				return err
			}

			fmt.Fprintln(out, "Status: ok")
			return nil
		},
	}
}

// lastImport returns the record of the stored catalog's import, or nil when
// nothing has been imported.
func lastImport() (*stay.Import, error) {
	database, err := openCatalog()
	if errors.Is(err, db.ErrNoCatalog) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer closeDB(database)

	return stay.NewRepository(database).LastImport()
}

func printCatalogStatus(w io.Writer, imp *stay.Import) {
	if imp == nil {
		fmt.Fprintln(w, "Catalog: not imported")
		return
	}
	fmt.Fprintf(w, "Catalog: %d stays from %s (imported %s)\n",
		imp.ListingCount, imp.Source, imp.ImportedAt.Local().Format("2006-01-02 15:04"))
}
