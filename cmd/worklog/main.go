package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/worklog/internal/cli"
	"github.com/alexanderramin/worklog/internal/config"
	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/repository"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/alexanderramin/worklog/internal/timecalc"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and the unit of work.
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	actionRepo := repository.NewSQLiteActionRepo(database)
	breakRepo := repository.NewSQLiteBreakRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	calculator := timecalc.NewCalculator(cfg.WorkNorm.Minutes)

	var opts []service.ManagerOption
	if cfg.Log.Verbose {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}

	app := &cli.App{
		Worklog: service.NewWorklogManager(sessionRepo, actionRepo, breakRepo, uow, calculator, opts...),
	}

	// Detect interactive terminal for the break picker and live view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
