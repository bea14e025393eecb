package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/shiftclock/internal/cli"
	"github.com/alexanderramin/shiftclock/internal/db"
	"github.com/alexanderramin/shiftclock/internal/repository"
	"github.com/alexanderramin/shiftclock/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.shiftclock/shiftclock.db
	dbPath := os.Getenv("SHIFTCLOCK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".shiftclock", "shiftclock.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	workerRepo := repository.NewSQLiteWorkerRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	clock := service.SystemClock{}

	// Command telemetry goes to stderr when enabled.
	var observers []service.UseCaseObserver
	if os.Getenv("SHIFTCLOCK_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Sessions:  service.NewSessionService(sessionRepo, uow, clock, observers...),
		Summaries: service.NewSummaryService(sessionRepo, clock),
		Schedules: service.NewScheduleService(scheduleRepo, uow, clock, observers...),
		Query:     service.NewQueryService(sessionRepo, scheduleRepo, workerRepo, projectRepo, clock),
		Roster:    service.NewRosterService(workerRepo, projectRepo, clock),
		Clock:     clock,
	}

	// Detect interactive terminal for the clock-in form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
