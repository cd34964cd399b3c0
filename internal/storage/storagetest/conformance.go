// Package storagetest holds the behaviour every storage.Provider backend must share.
package storagetest

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/julianstephens/dayjournal/internal/storage"
)

// Run exercises p against the Provider contract. p must be initialized and empty.
func Run(t *testing.T, p storage.Provider) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		if _, err := p.Get(ctx, "journal_1999-01-01"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		key := "journal_2024-03-01"
		if err := p.Set(ctx, key, `{"waterIntake":4}`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := p.Set(ctx, key, `{"waterIntake":1}`); err != nil {
			t.Fatalf("Set overwrite failed: %v", err)
		}
		got, err := p.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != `{"waterIntake":1}` {
			t.Errorf("Get() = %q, want last written value", got)
		}
	})

	t.Run("keys lists every key", func(t *testing.T) {
		if err := p.Set(ctx, "appTheme", "rose"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		keys, err := p.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys failed: %v", err)
		}
		sort.Strings(keys)
		want := []string{"appTheme", "journal_2024-03-01"}
		if len(keys) != len(want) {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
		for i := range want {
			if keys[i] != want[i] {
				t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
			}
		}
	})

	t.Run("remove", func(t *testing.T) {
		if err := p.Remove(ctx, "appTheme"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if err := p.Remove(ctx, "appTheme"); err != nil {
			t.Errorf("Remove of missing key should be a no-op, got %v", err)
		}
		if _, err := p.Get(ctx, "appTheme"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Get after Remove error = %v, want ErrNotFound", err)
		}
	})

	t.Run("values are opaque", func(t *testing.T) {
		value := "línea 1\nline 2 \"quoted\" 💧"
		if err := p.Set(ctx, "journal_2024-03-02", value); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := p.Get(ctx, "journal_2024-03-02")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != value {
			t.Errorf("Get() = %q, want %q", got, value)
		}
	})
}
