package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/davidmontoya/vesper/internal/api"
	"github.com/davidmontoya/vesper/internal/cli"
	"github.com/davidmontoya/vesper/internal/collection"
	"github.com/davidmontoya/vesper/internal/db"
	"github.com/davidmontoya/vesper/internal/repository"
	"github.com/davidmontoya/vesper/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.vesper/vesper.db
	dbPath := os.Getenv("VESPER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".vesper", "vesper.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire the content API client
	apiCfg := api.LoadConfig()
	var observer api.Observer = api.NoopObserver{}
	if apiCfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}
	client := api.NewClient(apiCfg, observer)

	// Wire repositories and services
	planRepo := repository.NewSQLitePlanRepo(database)
	itemRepo := repository.NewSQLitePlanItemRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Discovery:   service.NewDiscoveryService(client, collection.DefaultMenu()),
		Recommend:   service.NewRecommendService(client),
		Plans:       service.NewPlanService(planRepo, itemRepo, uow),
		DefaultCity: os.Getenv("VESPER_CITY"),
	}

	// Detect interactive terminal for the dialogue and reorder views.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
