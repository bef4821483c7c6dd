package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/nkoval/centum/internal/cli"
	"github.com/nkoval/centum/internal/db"
	"github.com/nkoval/centum/internal/repository"
	"github.com/nkoval/centum/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.centum/centum.db
	dbPath := os.Getenv("CENTUM_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".centum", "centum.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	challengeRepo := repository.NewSQLiteChallengeRepo(database)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	challengeSvc := service.NewChallengeService(challengeRepo, entryRepo, uow)

	// The streak counter is advisory and may drift if a previous run
	// was interrupted mid-write. Rebuild it from the day records on
	// every startup.
	if _, err := challengeSvc.RecomputeStreak(context.Background()); err != nil {
		return fmt.Errorf("recomputing streak: %w", err)
	}

	app := &cli.App{
		Challenge: challengeSvc,
	}

	// Detect interactive terminal for the bare-invocation dashboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
