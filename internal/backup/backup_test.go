package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/journal"
	"github.com/julianstephens/dayjournal/internal/models"
	"github.com/julianstephens/dayjournal/internal/storage/sqlite"
)

// setupJournalDB creates an initialized journal database holding entries for dates.
func setupJournalDB(t *testing.T, dates ...string) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "dayjournal.db")
	kv := sqlite.NewStore(dbPath)
	if err := kv.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer kv.Close()

	store := journal.NewStore(kv)
	for _, date := range dates {
		entry := models.NewJournalEntry(date)
		entry.WaterIntake = 2
		if err := store.Put(context.Background(), entry); err != nil {
			t.Fatalf("Put(%s) failed: %v", date, err)
		}
	}
	return dbPath
}

// steppingClock advances one minute per call so every backup gets its own name.
func steppingClock() func() time.Time {
	now := time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local)
	return func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupJournalDB(t, "2024-01-01", "2024-01-15")

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup written to %s, want %s", filepath.Dir(backupPath), mgr.GetBackupDir())
	}

	n, err := CountEntries(backupPath)
	if err != nil {
		t.Fatalf("CountEntries failed: %v", err)
	}
	if n != 2 {
		t.Errorf("backup holds %d entries, want 2", n)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup should fail without a database")
	}
}

func TestBackupNamesStayUniqueWithinAMinute(t *testing.T) {
	dbPath := setupJournalDB(t)
	mgr := NewManager(dbPath)
	fixed := time.Date(2024, 2, 1, 9, 30, 15, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		if seen[path] {
			t.Fatalf("duplicate backup path %s", path)
		}
		seen[path] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 4 {
		t.Errorf("ListBackups() returned %d, want 4", len(backups))
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupJournalDB(t, "2024-01-01")
	mgr := NewManager(dbPath)
	mgr.now = steppingClock()

	for i := 0; i < constants.MaxBackups+5; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backup %d is newer than backup %d", i, i-1)
		}
	}
	// The newest survive
	want := time.Date(2024, 2, 1, 9, constants.MaxBackups+5, 0, 0, time.Local)
	if !backups[0].Timestamp.Equal(want) {
		t.Errorf("newest backup = %v, want %v", backups[0].Timestamp, want)
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	dbPath := setupJournalDB(t)
	mgr := NewManager(dbPath)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups before the directory exists, got %d", len(backups))
	}

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	for _, name := range []string{"notes.txt", "dayjournal-latest.db", "otherapp-20240101-1200.db"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 || backups[0].Timestamp.IsZero() {
		t.Errorf("incomplete backup info: %+v", backups[0])
	}
}

func TestParseBackupName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		want time.Time
	}{
		{"dayjournal-20240201-0930.db", true, time.Date(2024, 2, 1, 9, 30, 0, 0, time.Local)},
		{"dayjournal-20240201-093015.db", true, time.Date(2024, 2, 1, 9, 30, 15, 0, time.Local)},
		{"dayjournal-20240201-093015-3.db", true, time.Date(2024, 2, 1, 9, 30, 15, 0, time.Local)},
		{"dayjournal-20240201.db", false, time.Time{}},
		{"dayjournal-20241301-0930.db", false, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseBackupName(tt.name)
			if ok != tt.ok {
				t.Fatalf("parseBackupName() ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("parseBackupName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupJournalDB(t, "2024-01-01", "2024-01-15")
	mgr := NewManager(dbPath)
	mgr.now = steppingClock()

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Change the live journal after the snapshot
	kv := sqlite.NewStore(dbPath)
	if err := kv.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := journal.NewStore(kv).Put(context.Background(), models.NewJournalEntry("2024-02-01")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	kv.Close()

	saved, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if saved == "" {
		t.Fatal("RestoreBackup should snapshot the current database first")
	}

	if n, err := CountEntries(dbPath); err != nil || n != 2 {
		t.Errorf("restored database holds %d entries (err %v), want 2", n, err)
	}
	if n, err := CountEntries(saved); err != nil || n != 3 {
		t.Errorf("pre-restore snapshot holds %d entries (err %v), want 3", n, err)
	}
}

func TestRestoreRejectsInvalidFiles(t *testing.T) {
	dbPath := setupJournalDB(t, "2024-01-01")
	mgr := NewManager(dbPath)

	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("RestoreBackup accepted a missing file")
	}

	garbage := filepath.Join(t.TempDir(), "garbage.db")
	if err := os.WriteFile(garbage, []byte("not a database"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := mgr.RestoreBackup(garbage); err == nil {
		t.Error("RestoreBackup accepted a non-sqlite file")
	}

	if n, err := CountEntries(dbPath); err != nil || n != 1 {
		t.Errorf("live database changed after rejected restore: %d entries, err %v", n, err)
	}
}
