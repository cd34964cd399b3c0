package journal

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/julianstephens/dayjournal/internal/models"
	"github.com/julianstephens/dayjournal/internal/storage/memory"
)

var errDiskFull = errors.New("disk full")

// failingProvider wraps the memory store and fails the operations named in fail.
type failingProvider struct {
	*memory.Store
	fail map[string]bool
}

func (f *failingProvider) Get(ctx context.Context, key string) (string, error) {
	if f.fail["get"] {
		return "", errDiskFull
	}
	return f.Store.Get(ctx, key)
}

func (f *failingProvider) Set(ctx context.Context, key, value string) error {
	if f.fail["set"] {
		return errDiskFull
	}
	return f.Store.Set(ctx, key, value)
}

func (f *failingProvider) Remove(ctx context.Context, key string) error {
	if f.fail["remove"] {
		return errDiskFull
	}
	return f.Store.Remove(ctx, key)
}

func (f *failingProvider) Keys(ctx context.Context) ([]string, error) {
	if f.fail["keys"] {
		return nil, errDiskFull
	}
	return f.Store.Keys(ctx)
}

func sampleEntry(date string) models.JournalEntry {
	return models.JournalEntry{
		Date:        date,
		Feelings:    []string{"Calm", "Grateful"},
		SelfLove:    "I kept my promise to rest.",
		SelfCare:    []string{"Walk"},
		Gratitude:   [3]string{"sunlight", "", "tea"},
		WaterIntake: 5,
	}
}

func TestPutThenGetRoundTrips(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.New())

	entries := []models.JournalEntry{
		sampleEntry("2024-02-29"),
		models.NewJournalEntry("2023-12-31"),
		{Date: "2024-01-01", Feelings: []string{}, SelfCare: []string{}, WaterIntake: 8},
	}

	for _, want := range entries {
		t.Run(want.Date, func(t *testing.T) {
			if err := store.Put(ctx, want); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			// Idempotent
			if err := store.Put(ctx, want); err != nil {
				t.Fatalf("second Put failed: %v", err)
			}

			got, found, err := store.Get(ctx, want.Date)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !found {
				t.Fatal("Get reported the entry as absent")
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Get() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestPutReplacesWholeEntry(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.New())

	first := sampleEntry("2024-03-01")
	first.WaterIntake = 4
	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	second := models.NewJournalEntry("2024-03-01")
	second.WaterIntake = 1
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, _, err := store.Get(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.WaterIntake != 1 {
		t.Errorf("WaterIntake = %d, want 1", got.WaterIntake)
	}
	if len(got.Feelings) != 0 || got.SelfLove != "" {
		t.Errorf("fields from the first save leaked into the second: %+v", got)
	}
}

func TestGetAbsentAndGetEntryDefault(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.New())

	_, found, err := store.Get(ctx, "2024-05-05")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("Get on an empty store reported found")
	}

	got, err := store.GetEntry(ctx, "2024-05-05")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if !reflect.DeepEqual(got, models.NewJournalEntry("2024-05-05")) {
		t.Errorf("GetEntry() = %+v, want default entry", got)
	}
	if !got.IsBlank() {
		t.Error("default entry should be blank")
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.New())

	if err := store.Put(ctx, sampleEntry("2024-04-10")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Delete(ctx, "2024-04-10"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found, _ := store.Get(ctx, "2024-04-10"); found {
		t.Error("entry still present after Delete")
	}
	if err := store.Delete(ctx, "2024-04-10"); err != nil {
		t.Errorf("Delete of an absent date should succeed, got %v", err)
	}
}

func TestInvalidDates(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.New())

	for _, date := range []string{"", "2024-2-1", "2024-02-30", "01.02.2024", "2024-13-01"} {
		t.Run(date, func(t *testing.T) {
			if _, _, err := store.Get(ctx, date); !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Get(%q) error = %v, want ErrInvalidDate", date, err)
			}
			if err := store.Delete(ctx, date); !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Delete(%q) error = %v, want ErrInvalidDate", date, err)
			}
			if err := store.Put(ctx, models.NewJournalEntry(date)); !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Put(%q) error = %v, want ErrInvalidDate", date, err)
			}
		})
	}
}

func TestPutRejectsInvalidEntries(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.New())

	tests := []struct {
		name  string
		entry models.JournalEntry
	}{
		{
			name:  "negative water",
			entry: models.JournalEntry{Date: "2024-01-01", WaterIntake: -1},
		},
		{
			name:  "duplicate feelings",
			entry: models.JournalEntry{Date: "2024-01-01", Feelings: []string{"Happy", "Happy"}},
		},
		{
			name:  "empty self-care label",
			entry: models.JournalEntry{Date: "2024-01-01", SelfCare: []string{""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Put(ctx, tt.entry)
			if !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("Put() error = %v, want ErrInvalidEntry", err)
			}
			if _, found, _ := store.Get(ctx, tt.entry.Date); found {
				t.Error("rejected entry was written")
			}
		})
	}
}

func TestListAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	store := NewStore(kv)

	for _, date := range []string{"2024-01-01", "2024-01-15", "2023-06-30"} {
		if err := store.Put(ctx, sampleEntry(date)); err != nil {
			t.Fatalf("Put(%s) failed: %v", date, err)
		}
	}
	// Preferences share the key space and must be ignored
	if err := kv.Set(ctx, "appTheme", "rose"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	entries, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	var dates []string
	for _, e := range entries {
		dates = append(dates, e.Date)
	}
	want := []string{"2024-01-15", "2024-01-01", "2023-06-30"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("ListAll dates = %v, want %v", dates, want)
	}
}

func TestListAllSkipsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	store := NewStore(kv)

	if err := store.Put(ctx, sampleEntry("2024-01-02")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	bad := map[string]string{
		"journal_2024-01-03": "{not json",
		"journal_2024-01-04": `{"date":"2024-01-05"}`,
		"journal_not-a-date": `{}`,
		"journal_2024-01-06": `{"waterIntake":-2}`,
		"journal_2024-01-07": `{"gratitude":["a","b","c","d"]}`,
		"journal_2024-01-08": `{"schemaVersion":99}`,
	}
	for k, v := range bad {
		if err := kv.Set(ctx, k, v); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	entries, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Date != "2024-01-02" {
		t.Errorf("ListAll() = %+v, want only 2024-01-02", entries)
	}

	report, err := store.Scan(ctx)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if report.Total != 7 || report.Valid != 1 || len(report.Malformed) != len(bad) {
		t.Errorf("Scan() = total %d valid %d malformed %d, want 7/1/%d", report.Total, report.Valid, len(report.Malformed), len(bad))
	}
	for _, m := range report.Malformed {
		if !errors.Is(m.Err, ErrMalformedRecord) {
			t.Errorf("%s: error %v does not wrap ErrMalformedRecord", m.Key, m.Err)
		}
	}
}

func TestGetMalformedRecord(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	store := NewStore(kv)

	if err := kv.Set(ctx, KeyFor("2024-02-02"), "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	_, _, err := store.Get(ctx, "2024-02-02")
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Get() error = %v, want ErrMalformedRecord", err)
	}
	if errors.Is(err, ErrStorageIO) {
		t.Error("malformed record must be distinguishable from storage failure")
	}
}

func TestStorageFailuresWrapErrStorageIO(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		fail string
		call func(*Store) error
	}{
		{name: "get", fail: "get", call: func(s *Store) error { _, _, err := s.Get(ctx, "2024-01-01"); return err }},
		{name: "put", fail: "set", call: func(s *Store) error { return s.Put(ctx, sampleEntry("2024-01-01")) }},
		{name: "delete", fail: "remove", call: func(s *Store) error { return s.Delete(ctx, "2024-01-01") }},
		{name: "list", fail: "keys", call: func(s *Store) error { _, err := s.ListAll(ctx); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(&failingProvider{Store: memory.New(), fail: map[string]bool{tt.fail: true}})
			err := tt.call(store)
			if !errors.Is(err, ErrStorageIO) {
				t.Errorf("error = %v, want ErrStorageIO", err)
			}
			if !errors.Is(err, errDiskFull) {
				t.Errorf("error = %v, want the provider cause preserved", err)
			}
		})
	}
}

func TestKeyScheme(t *testing.T) {
	if got := KeyFor("2024-02-29"); got != "journal_2024-02-29" {
		t.Errorf("KeyFor() = %q", got)
	}
	if date, ok := DateFromKey("journal_2024-02-29"); !ok || date != "2024-02-29" {
		t.Errorf("DateFromKey() = %q, %v", date, ok)
	}
	if _, ok := DateFromKey("app_theme"); ok {
		t.Error("DateFromKey accepted a non-journal key")
	}
}
