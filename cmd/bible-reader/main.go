package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Uniqwrites1/bible-reader/internal/catalog"
	"github.com/Uniqwrites1/bible-reader/internal/cli"
	"github.com/Uniqwrites1/bible-reader/internal/generator"
	"github.com/Uniqwrites1/bible-reader/internal/logger"
	"github.com/Uniqwrites1/bible-reader/internal/progress"
	"github.com/Uniqwrites1/bible-reader/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/bible-reader/bible-reader.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init cli.InitCmd `cmd:"" help:"Initialize bible-reader storage."`
	Plan struct {
		Create cli.PlanCreateCmd `cmd:"" help:"Create a new reading plan."`
		List   cli.PlanListCmd   `cmd:"" help:"List all plans."`
		Show   cli.PlanShowCmd   `cmd:"" help:"Show a plan's details."`
		Delete cli.PlanDeleteCmd `cmd:"" help:"Delete a plan and its progress."`
		Pdf    cli.PlanPdfCmd    `cmd:"" help:"Write a plan's schedule to PDF."`
	} `cmd:"" help:"Manage reading plans."`
	Day    cli.DayCmd    `cmd:"" help:"Show a day's readings."`
	Mark   cli.MarkCmd   `cmd:"" help:"Mark a reading complete."`
	Unmark cli.UnmarkCmd `cmd:"" help:"Mark a reading incomplete."`
	Export cli.ExportCmd `cmd:"" help:"Export plans, progress, and settings to JSON."`
	Import cli.ImportCmd `cmd:"" help:"Import a previously exported snapshot."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Check stored plans and progress for integrity problems."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive daily reading view." default:"1"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bible-reader"),
		kong.Description("Personal Bible reading-plan scheduler and progress tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Store format follows the config extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	cat := catalog.Default()
	appCtx := &cli.Context{
		Store:     store,
		Generator: generator.New(cat),
		Ledger:    progress.NewLedger(store),
		Catalog:   cat,
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
