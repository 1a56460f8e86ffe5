package cli

import (
	"github.com/spf13/cobra"
)

func newLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the locations stays can be filtered by",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locs, err := newAPIClient().Locations()
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), locs)
			}
			return printLocations(cmd.OutOrStdout(), locs)
		},
	}
}
