// Package journal files one JournalEntry per calendar date in a key-value provider.
package journal

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/logger"
	"github.com/julianstephens/dayjournal/internal/models"
	"github.com/julianstephens/dayjournal/internal/storage"
	"github.com/julianstephens/dayjournal/internal/validation"
)

// Store is the entry store. It is safe for concurrent use when its provider is.
type Store struct {
	kv storage.Provider
}

func NewStore(kv storage.Provider) *Store {
	return &Store{kv: kv}
}

// KeyFor returns the provider key an entry for date is filed under.
func KeyFor(date string) string {
	return constants.JournalKeyPrefix + date
}

// DateFromKey extracts the date from a journal key. ok is false for keys outside the journal.
func DateFromKey(key string) (date string, ok bool) {
	if !strings.HasPrefix(key, constants.JournalKeyPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, constants.JournalKeyPrefix), true
}

func checkDate(date string) error {
	if !validation.IsCanonicalDate(date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// Get returns the entry stored for date. found is false when nothing is stored.
func (s *Store) Get(ctx context.Context, date string) (entry models.JournalEntry, found bool, err error) {
	if err := checkDate(date); err != nil {
		return models.JournalEntry{}, false, err
	}

	raw, err := s.kv.Get(ctx, KeyFor(date))
	if errors.Is(err, storage.ErrNotFound) {
		return models.JournalEntry{}, false, nil
	}
	if err != nil {
		return models.JournalEntry{}, false, fmt.Errorf("%w: read %s: %w", ErrStorageIO, KeyFor(date), err)
	}

	entry, err = decodeEntry(date, raw)
	if err != nil {
		return models.JournalEntry{}, false, err
	}
	return entry, true, nil
}

// GetEntry returns the stored entry or the default entry when date has none.
func (s *Store) GetEntry(ctx context.Context, date string) (models.JournalEntry, error) {
	entry, found, err := s.Get(ctx, date)
	if err != nil {
		return models.JournalEntry{}, err
	}
	if !found {
		return models.NewJournalEntry(date), nil
	}
	return entry, nil
}

// Put replaces whatever is stored for entry.Date with entry. Fields are never merged.
func (s *Store) Put(ctx context.Context, entry models.JournalEntry) error {
	if err := checkDate(entry.Date); err != nil {
		return err
	}
	if err := validation.ValidateEntry(entry); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	raw, err := encodeEntry(entry)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyFor(entry.Date), raw); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorageIO, KeyFor(entry.Date), err)
	}
	logger.Debug("Saved journal entry", "date", entry.Date)
	return nil
}

// Delete removes the entry for date. Deleting a date with no entry succeeds.
func (s *Store) Delete(ctx context.Context, date string) error {
	if err := checkDate(date); err != nil {
		return err
	}
	if err := s.kv.Remove(ctx, KeyFor(date)); err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrStorageIO, KeyFor(date), err)
	}
	logger.Debug("Deleted journal entry", "date", date)
	return nil
}

// ListAll returns every readable entry, newest date first. Malformed records are skipped
// and logged so one bad record never hides the rest of the history.
func (s *Store) ListAll(ctx context.Context) ([]models.JournalEntry, error) {
	report, entries, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range report.Malformed {
		logger.Warn("Skipping malformed journal record", "key", m.Key, "error", m.Err)
	}
	return entries, nil
}

// MalformedRecord describes one journal key whose value could not be decoded.
type MalformedRecord struct {
	Key string
	Err error
}

// ScanReport summarizes the health of every journal key in the provider.
type ScanReport struct {
	Total     int
	Valid     int
	Malformed []MalformedRecord
}

// Scan reads every journal key and reports the ones that fail to decode.
func (s *Store) Scan(ctx context.Context) (ScanReport, error) {
	report, _, err := s.scan(ctx)
	return report, err
}

func (s *Store) scan(ctx context.Context) (ScanReport, []models.JournalEntry, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		return ScanReport{}, nil, fmt.Errorf("%w: list keys: %w", ErrStorageIO, err)
	}

	var report ScanReport
	var entries []models.JournalEntry
	for _, key := range keys {
		date, ok := DateFromKey(key)
		if !ok {
			continue
		}
		report.Total++

		if err := checkDate(date); err != nil {
			report.Malformed = append(report.Malformed, MalformedRecord{Key: key, Err: fmt.Errorf("%w: %w", ErrMalformedRecord, err)})
			continue
		}

		entry, found, err := s.Get(ctx, date)
		switch {
		case errors.Is(err, ErrMalformedRecord):
			report.Malformed = append(report.Malformed, MalformedRecord{Key: key, Err: err})
			continue
		case err != nil:
			return ScanReport{}, nil, err
		case !found:
			// Removed between Keys and Get
			report.Total--
			continue
		}

		report.Valid++
		entries = append(entries, entry)
	}

	// Canonical dates sort chronologically as strings
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	sort.Slice(report.Malformed, func(i, j int) bool {
		return report.Malformed[i].Key < report.Malformed[j].Key
	})
	return report, entries, nil
}
