package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidmontoya/vesper/internal/cli/formatter"
	"github.com/davidmontoya/vesper/internal/contract"
)

func newSearchCmd(app *App) *cobra.Command {
	var city string
	var limit int

	cmd := &cobra.Command{
		Use:   `search "<query>"`,
		Short: "Search venues and events by name or genre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.resolveCity(city)
			if err != nil {
				return err
			}

			resp, err := app.Discovery.Search(context.Background(), contract.SearchRequest{
				City:  c,
				Query: args[0],
				Cap:   limit,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSearch(resp))
			return nil
		},
	}

	addCityFlag(cmd.Flags(), &city)
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results (default 20)")

	return cmd
}
