package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidmontoya/vesper/internal/cli/formatter"
	"github.com/davidmontoya/vesper/internal/contract"
)

func newDiscoverCmd(app *App) *cobra.Command {
	var city string

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Browse tonight's collections for a city",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.resolveCity(city)
			if err != nil {
				return err
			}

			resp, err := app.Discovery.Discover(context.Background(), contract.DiscoverRequest{City: c})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDiscover(resp))
			return nil
		},
	}

	addCityFlag(cmd.Flags(), &city)

	return cmd
}

// resolveCity picks the flag value or the configured default.
func (a *App) resolveCity(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if a.DefaultCity != "" {
		return a.DefaultCity, nil
	}
	return "", fmt.Errorf("no city given: pass --city or set VESPER_CITY")
}
