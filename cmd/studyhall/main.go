package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/studyhall/studyhall/internal/cli"
	"github.com/studyhall/studyhall/internal/constants"
	"github.com/studyhall/studyhall/internal/errors"
	"github.com/studyhall/studyhall/internal/logger"
	"github.com/studyhall/studyhall/internal/storage"
	"github.com/studyhall/studyhall/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .db path uses SQLite; any other path is treated as a plain-file data directory." type:"string" default:"~/.config/studyhall/studyhall.db"`
	Debug   bool   `help:"Enable debug logging."`

	Dashboard cli.DashboardCmd `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Habit     cli.HabitCmd     `cmd:"" help:"Manage habits and habit tracking."`
	Task      cli.TaskCmd      `cmd:"" help:"Manage assignments and subtasks."`
	Subject   cli.SubjectCmd   `cmd:"" help:"Manage subjects."`
	Goal      cli.GoalCmd      `cmd:"" help:"Manage goals and milestones."`
	Category  cli.CategoryCmd  `cmd:"" help:"Manage goal categories."`
	Schedule  cli.ScheduleCmd  `cmd:"" help:"Manage the weekly class schedule."`
	Profile   cli.ProfileCmd   `cmd:"" help:"Show level, XP, and progress stats."`
	Theme     cli.ThemeCmd     `cmd:"" help:"Get or set the color theme."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Backup    cli.BackupCmd    `cmd:"" help:"Manage data backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Student productivity companion: habits, assignments, goals, and class schedule"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	storagePath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: filepath.Dir(storagePath)}); err != nil {
		errors.Fatal(err)
	}

	// A .db path gets the SQLite backend; anything else is a directory of
	// per-collection JSON files.
	var provider storage.Provider
	if strings.HasSuffix(storagePath, ".db") {
		provider = storage.NewSQLiteStore(storagePath)
	} else {
		provider = storage.NewFileStore(storagePath)
	}

	if err := provider.Init(); err != nil {
		errors.Fatalf("failed to initialize storage at %s: %v", storagePath, err)
	}
	defer provider.Close()

	st, err := store.Open(provider)
	if err != nil {
		errors.Fatal(err)
	}

	if err := ctx.Run(&cli.Context{Store: st, StoragePath: storagePath}); err != nil {
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
