package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/dayjournal/internal/cli"
	"github.com/julianstephens/dayjournal/internal/journal"
	"github.com/julianstephens/dayjournal/internal/preferences"
	"github.com/julianstephens/dayjournal/internal/storage"
	"github.com/julianstephens/dayjournal/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing journal before initialization."`
	Source string `help:"Source database path or connection string to copy the journal from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized %s storage at: %s\n", cli.KindOf(ctx.Store), ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying journal from: %s\n", c.Source)
		if err := c.copyFrom(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Println("Migration completed successfully!")
	}

	return nil
}

// reset deletes a sqlite file, or empties a network backend once it is reachable.
func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); ok {
		dbPath := ctx.Store.GetConfigPath()
		if absDbPath, err := filepath.Abs(dbPath); err == nil {
			dbPath = absDbPath
		}
		if c.Source != "" {
			if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			ctx.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
		return nil
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	n, err := clearAll(ctx.Ctx, ctx.Store)
	if err != nil {
		return fmt.Errorf("failed to clear existing journal: %w", err)
	}
	ctx.Printf("Removed %d existing keys from %s\n", n, ctx.Store.GetConfigPath())
	return nil
}

func clearAll(ctx context.Context, kv storage.Provider) (int, error) {
	keys, err := kv.Keys(ctx)
	if err != nil {
		return 0, err
	}
	for _, k := range keys {
		if err := kv.Remove(ctx, k); err != nil {
			return 0, err
		}
	}
	return len(keys), nil
}

// copyFrom copies every readable entry and the preferences from source.
// Malformed source records are skipped with a logged warning.
func (c *InitCmd) copyFrom(ctx *cli.Context, source string) error {
	src, err := cli.NewStore(cli.ExpandHome(source))
	if err != nil {
		return err
	}
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	ctx.Println("  Copying preferences...")
	prefs, err := preferences.NewManager(src).Load(ctx.Ctx)
	if err != nil {
		return fmt.Errorf("failed to read preferences from source: %w", err)
	}
	if err := ctx.Preferences.Save(ctx.Ctx, prefs); err != nil {
		return fmt.Errorf("failed to save preferences to destination: %w", err)
	}

	ctx.Println("  Copying entries...")
	entries, err := journal.NewStore(src).ListAll(ctx.Ctx)
	if err != nil {
		return fmt.Errorf("failed to read entries from source: %w", err)
	}
	for _, e := range entries {
		if err := ctx.Journal.Put(ctx.Ctx, e); err != nil {
			return fmt.Errorf("failed to copy entry %s: %w", e.Date, err)
		}
	}
	ctx.Printf("    Copied %d entries\n", len(entries))
	return nil
}
