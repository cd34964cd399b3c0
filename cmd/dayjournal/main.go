package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/dayjournal/internal/cli"
	"github.com/julianstephens/dayjournal/internal/cli/backups"
	"github.com/julianstephens/dayjournal/internal/cli/charts"
	"github.com/julianstephens/dayjournal/internal/cli/entries"
	"github.com/julianstephens/dayjournal/internal/cli/settings"
	"github.com/julianstephens/dayjournal/internal/cli/system"
	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/errors"
	"github.com/julianstephens/dayjournal/internal/journal"
	"github.com/julianstephens/dayjournal/internal/keyring"
	"github.com/julianstephens/dayjournal/internal/logger"
	"github.com/julianstephens/dayjournal/internal/migration"
)

// App is the kong command tree.
type App struct {
	Version kong.VersionFlag
	Config  string `help:"Storage target: sqlite file path, postgres:// or key=value DSN, redis:// URL, or :memory:. Defaults to $DAYJOURNAL_DB_CONNECTION, then the OS keyring, then ~/.config/dayjournal/dayjournal.db. Passwords must not be embedded." type:"string"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize journal storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Entry   struct {
		Show   entries.ShowCmd   `cmd:"" help:"Show one day's entry." default:"withargs"`
		Save   entries.SaveCmd   `cmd:"" help:"Write a whole entry from flags."`
		Edit   entries.EditCmd   `cmd:"" help:"Edit a day interactively."`
		Water  entries.WaterCmd  `cmd:"" help:"Set or adjust the water intake of a day."`
		Delete entries.DeleteCmd `cmd:"" help:"Delete a day's entry."`
		List   entries.ListCmd   `cmd:"" help:"List all entries, newest first."`
	} `cmd:"" help:"Read and write journal entries."`
	Chart struct {
		Month charts.MonthCmd `cmd:"" help:"Chart daily water intake for a month." default:"withargs"`
		Week  charts.WeekCmd  `cmd:"" help:"Chart water intake for a Monday-Sunday week."`
	} `cmd:"" help:"Water intake charts."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage display and reminder preferences."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the storage target or Redis password in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored value with passwords masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove a stored value."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage credentials in the OS keyring."`
}

// loadEnv reads .env files without overriding variables already set.
func loadEnv() {
	files := []string{".env"}
	if dir := filepath.Dir(cli.ExpandHome(constants.DefaultConfigPath)); dir != "" {
		files = append(files, filepath.Join(dir, ".env"))
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read %s: %v\n", f, err)
		}
	}
}

func registerHints() {
	errors.RegisterHint(journal.ErrInvalidDate, "dates are written YYYY-MM-DD, e.g. 2024-02-15 (or 'today', 'yesterday')")
	errors.RegisterHint(journal.ErrMalformedRecord, fmt.Sprintf("run '%s doctor' to list unreadable records", constants.AppName))
	errors.RegisterHint(journal.ErrStorageIO, fmt.Sprintf("check that the storage target is reachable; '%s doctor' runs the connection checks", constants.AppName))
	errors.RegisterHint(migration.ErrNewerSchema, "install the dayjournal release that last migrated this journal, or restore a backup")
	errors.RegisterHint(keyring.ErrKeyringUnavailable, fmt.Sprintf("pass --config or set %s instead", constants.EnvDBConnection))
}

// preloads reports whether the store must be opened before the command runs.
// The listed commands open or create storage themselves, or never touch it.
func preloads(command string) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "init", "migrate", "doctor", "keyring":
		return false
	}
	return true
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name(constants.AppName),
		kong.Description("Daily journal: feelings, self-care, gratitude and water intake"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	}
}

// execute opens target and runs the parsed command against it. setup, when
// non-nil, adjusts the context before anything is loaded.
func execute(kctx *kong.Context, target string, setup func(*cli.Context)) error {
	store, err := cli.NewStore(target)
	if err != nil {
		return err
	}

	appCtx := cli.NewContext(store)
	if setup != nil {
		setup(appCtx)
	}
	if preloads(kctx.Command()) {
		if err := store.Load(); err != nil {
			return err
		}
		if err := appCtx.LoadPreferences(); err != nil {
			_ = store.Close()
			return err
		}
	}

	err = kctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close storage", "error", closeErr)
	}
	return err
}

func main() {
	loadEnv()

	var app App
	kctx := kong.Parse(&app, options()...)

	target, source := cli.ResolveTarget(app.Config)
	if err := logger.Init(logger.Config{Debug: app.Debug, ConfigDir: cli.ConfigDir(target)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	logger.Debug("Resolved storage target", "kind", cli.TargetKind(target), "source", source)
	registerHints()

	errors.Fatal(execute(kctx, target, nil))
}
