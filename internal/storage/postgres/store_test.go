package postgres

import (
	"os"
	"strings"
	"testing"

	"github.com/julianstephens/dayjournal/internal/storage/storagetest"
)

func TestNewPinsSearchPath(t *testing.T) {
	tests := []struct {
		name    string
		connStr string
		want    string
	}{
		{
			name:    "URL gains search_path",
			connStr: "postgres://me@localhost:5432/journal",
			want:    "search_path=dayjournal",
		},
		{
			name:    "URL keeps caller schema",
			connStr: "postgres://me@localhost:5432/journal?search_path=custom",
			want:    "search_path=custom",
		},
		{
			name:    "DSN gains search_path",
			connStr: "host=localhost dbname=journal",
			want:    "host=localhost dbname=journal search_path=dayjournal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.connStr)
			if !strings.Contains(s.connStr, tt.want) {
				t.Errorf("connStr = %q, want it to contain %q", s.connStr, tt.want)
			}
			if strings.Count(s.connStr, "search_path") != 1 {
				t.Errorf("connStr = %q, want exactly one search_path", s.connStr)
			}
		})
	}
}

// TestStore_Integration runs the provider contract against a real database.
// Example: POSTGRES_TEST_URL="postgres://journal@localhost:5432/journal_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	if _, err := store.GetDB().Exec("DELETE FROM kv"); err != nil {
		t.Fatalf("Failed to clear kv table: %v", err)
	}

	storagetest.Run(t, store)

	current, latest, err := store.SchemaStatus()
	if err != nil {
		t.Fatalf("SchemaStatus failed: %v", err)
	}
	if current != latest {
		t.Errorf("SchemaStatus() = (%d, %d), want equal", current, latest)
	}
}
