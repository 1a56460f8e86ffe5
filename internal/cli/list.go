package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/stay-finder/internal/search"
)

func newListCmd() *cobra.Command {
	var (
		location string
		adults   int
		children int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stays",
		Long:  "List the stays that fit a location and party size. Without flags every stay is shown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, stagedFilter(location, adults, children))
		},
	}

	cmd.Flags().StringVar(&location, "location", "", `location to filter by, e.g. "Helsinki, Finland"`)
	cmd.Flags().IntVar(&adults, "adults", 0, "number of adults")
	cmd.Flags().IntVar(&children, "children", 0, "number of children")

	return cmd
}

// stagedFilter builds a filter the same way the search drawer does.
// Negative counts are treated as zero.
func stagedFilter(location string, adults, children int) search.Filter {
	var st search.Stager
	st.SelectLocation(location)
	for i := 0; i < adults; i++ {
		st.IncrementAdults()
	}
	for i := 0; i < children; i++ {
		st.IncrementChildren()
	}
	return st.Confirm()
}

func runList(cmd *cobra.Command, f search.Filter) error {
	res, err := newAPIClient().ListStays(f)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), res)
	}

	return printStayTable(cmd.OutOrStdout(), res)
}
