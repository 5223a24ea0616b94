package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/davidmontoya/vesper/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Discovery service.DiscoveryService
	Recommend service.RecommendService
	Plans     service.PlanService

	// IsInteractive reports whether stdin is a terminal; the guided
	// dialogue and the reorder view refuse to run without one.
	IsInteractive func() bool

	// DefaultCity is used when --city is not given (VESPER_CITY).
	DefaultCity string
}

// NewRootCmd creates the top-level "vesper" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "vesper",
		Short: "Find your night out: venues, events, and plans",
	}

	root.AddCommand(
		newDiscoverCmd(app),
		newSearchCmd(app),
		newAskCmd(app),
		newPlanCmd(app),
	)

	return root
}

// interactive reports whether the app runs on a terminal, defaulting to
// false when unset (tests).
func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// addCityFlag registers the shared --city flag on a command's flag set.
func addCityFlag(fs *pflag.FlagSet, city *string) {
	fs.StringVar(city, "city", "", "City (defaults to VESPER_CITY)")
}
