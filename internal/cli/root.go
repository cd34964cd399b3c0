package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/dayjournal/internal/backup"
	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/insights"
	"github.com/julianstephens/dayjournal/internal/journal"
	"github.com/julianstephens/dayjournal/internal/logger"
	"github.com/julianstephens/dayjournal/internal/models"
	"github.com/julianstephens/dayjournal/internal/preferences"
	"github.com/julianstephens/dayjournal/internal/storage"
	"github.com/julianstephens/dayjournal/internal/storage/sqlite"
	"github.com/julianstephens/dayjournal/internal/validation"
)

// Context is handed to every command's Run method.
type Context struct {
	Store       storage.Provider
	Journal     *journal.Store
	Aggregator  *insights.Aggregator
	Preferences *preferences.Manager

	// Prefs is filled by LoadPreferences and stays at the defaults until then.
	Prefs models.Preferences

	Ctx context.Context
	Out io.Writer
	In  io.Reader
	Now func() time.Time
}

// NewContext wires the journal services over store.
func NewContext(store storage.Provider) *Context {
	entries := journal.NewStore(store)
	return &Context{
		Store:       store,
		Journal:     entries,
		Aggregator:  insights.NewAggregator(entries),
		Preferences: preferences.NewManager(store),
		Prefs:       preferences.Defaults(),
		Ctx:         context.Background(),
		Out:         os.Stdout,
		In:          os.Stdin,
		Now:         time.Now,
	}
}

// LoadPreferences reads preferences once so commands can use ctx.Prefs.
func (c *Context) LoadPreferences() error {
	prefs, err := c.Preferences.Load(c.Ctx)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	c.Prefs = prefs
	return nil
}

// Printf writes to the command output.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

// Println writes a line to the command output.
func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

// Today returns the current local date as YYYY-MM-DD.
func (c *Context) Today() string {
	return c.Now().Format(constants.DateFormat)
}

// ResolveDate returns today for an empty argument and checks the rest.
func (c *Context) ResolveDate(arg string) (string, error) {
	switch arg {
	case "", "today":
		return c.Today(), nil
	case "yesterday":
		return c.Now().AddDate(0, 0, -1).Format(constants.DateFormat), nil
	}
	if !validation.IsCanonicalDate(arg) {
		return "", fmt.Errorf("%w: %q (expected YYYY-MM-DD)", journal.ErrInvalidDate, arg)
	}
	return arg, nil
}

// DisplayDate renders a YYYY-MM-DD date as DD.MM.YYYY, returning the input when it does not parse.
func DisplayDate(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(constants.DisplayDateFormat)
}

// PerformAutomaticBackup snapshots sqlite journals and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Migrator is implemented by backends with a versioned SQL schema.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	SchemaStatus() (current, latest int, err error)
}
