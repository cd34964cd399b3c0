package system

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/dayjournal/internal/backup"
	"github.com/julianstephens/dayjournal/internal/cli"
	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/storage/sqlite"
)

var (
	processesFunc = ps.Processes
	errSkipped    = errors.New("skipped")
)

type DoctorCmd struct{}

type check struct {
	name     string
	warnOnly bool // report a warning instead of failing the run
	needsDB  bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Journal records", needsDB: true, run: checkJournalRecords},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Single writer", warnOnly: true, run: checkSingleWriter},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case errors.Is(err, errSkipped):
			ctx.Printf("⊘ %s: SKIPPED (%v)\n", c.name, strings.TrimSuffix(err.Error(), ": "+errSkipped.Error()))
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.Keys(ctx.Ctx); err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	return nil
}

func schemaStatus(ctx *cli.Context) (current, latest int, err error) {
	m, ok := ctx.Store.(cli.Migrator)
	if !ok {
		return 0, 0, fmt.Errorf("%s backend has no schema: %w", cli.KindOf(ctx.Store), errSkipped)
	}
	current, latest, err = m.SchemaStatus()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return current, latest, nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, err := schemaStatus(ctx)
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, err := schemaStatus(ctx)
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run '%s migrate')", current, latest, constants.AppName)
	}
	return nil
}

func checkJournalRecords(ctx *cli.Context) error {
	report, err := ctx.Journal.Scan(ctx.Ctx)
	if err != nil {
		return err
	}
	if len(report.Malformed) == 0 {
		return nil
	}
	keys := make([]string, len(report.Malformed))
	for i, m := range report.Malformed {
		keys[i] = m.Key
	}
	return fmt.Errorf("%d of %d journal records are unreadable: %s", len(report.Malformed), report.Total, strings.Join(keys, ", "))
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return fmt.Errorf("%s backend is not backed up locally: %w", cli.KindOf(ctx.Store), errSkipped)
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with '%s backup create'", constants.AppName)
	}
	return nil
}

// checkSingleWriter warns when another process of this program is running.
func checkSingleWriter(ctx *cli.Context) error {
	procs, err := processesFunc()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}
	self := os.Getpid()
	var others []string
	for _, p := range procs {
		if p.Pid() == self || p.Executable() != constants.AppName {
			continue
		}
		others = append(others, fmt.Sprint(p.Pid()))
	}
	if len(others) > 0 {
		return fmt.Errorf("other %s processes are running (pid %s); concurrent writers may overwrite each other's edits", constants.AppName, strings.Join(others, ", "))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
