package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/tempora/internal/classifier"
	"github.com/alexanderramin/tempora/internal/cli"
	"github.com/alexanderramin/tempora/internal/db"
	"github.com/alexanderramin/tempora/internal/drafting"
	"github.com/alexanderramin/tempora/internal/llm"
	"github.com/alexanderramin/tempora/internal/repository"
	"github.com/alexanderramin/tempora/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tempora/tempora.db
	dbPath := os.Getenv("TEMPORA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tempora", "tempora.db")
	}

	// Determine model artifact directory
	modelDir := os.Getenv("TEMPORA_MODELS")
	if modelDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		modelDir = filepath.Join(home, ".tempora", "models")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Load classifier artifacts. Missing or corrupt files degrade to
	// rule-based scoring, so warnings go to stderr instead of failing.
	bundle, warnings := classifier.Load(modelDir)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	// Wire the LLM client
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewOllamaClient(llmCfg, observer)

	scheduleRepo := repository.NewSQLiteScheduleRepo(database)

	app := &cli.App{
		Planner:   service.NewPlannerService(bundle, drafting.NewService(llmClient), scheduleRepo),
		Schedules: scheduleRepo,
	}

	// Detect interactive terminal for the guided plan form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
