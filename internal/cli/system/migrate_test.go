package system

import (
	"strings"
	"testing"

	"github.com/julianstephens/dayjournal/internal/cli"
	"github.com/julianstephens/dayjournal/internal/storage/memory"
)

func TestMigrateCmd_UpToDate(t *testing.T) {
	ctx, out, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(out.String(), "Database is up to date") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestMigrateCmd_NoSchemaBackend(t *testing.T) {
	ctx := cli.NewContext(memory.New())
	out := &strings.Builder{}
	ctx.Out = out

	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(out.String(), "memory backend has no versioned schema") {
		t.Errorf("unexpected output %q", out.String())
	}
}
