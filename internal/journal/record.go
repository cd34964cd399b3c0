package journal

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/models"
)

// record is the stored shape of an entry. Version 0 records predate the schemaVersion field.
type record struct {
	SchemaVersion int      `json:"schemaVersion"`
	Date          string   `json:"date"`
	Feelings      []string `json:"feelings"`
	SelfLove      string   `json:"selfLove"`
	SelfCare      []string `json:"selfCare"`
	Gratitude     []string `json:"gratitude"`
	WaterIntake   int      `json:"waterIntake"`
}

// upgrades moves a record from version N to N+1, indexed by N.
var upgrades = []func(*record){
	// 0 -> 1: legacy records may lack any field; decoding already default-fills them
	func(r *record) {},
}

func encodeEntry(entry models.JournalEntry) (string, error) {
	r := record{
		SchemaVersion: constants.RecordSchemaVersion,
		Date:          entry.Date,
		Feelings:      nonNil(entry.Feelings),
		SelfLove:      entry.SelfLove,
		SelfCare:      nonNil(entry.SelfCare),
		Gratitude:     entry.Gratitude[:],
		WaterIntake:   entry.WaterIntake,
	}
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode entry %s: %w", entry.Date, err)
	}
	return string(b), nil
}

// decodeEntry parses the value stored under the key for date.
func decodeEntry(date, raw string) (models.JournalEntry, error) {
	var r record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return models.JournalEntry{}, malformed(date, "invalid JSON: %v", err)
	}

	if r.SchemaVersion < 0 || r.SchemaVersion > constants.RecordSchemaVersion {
		return models.JournalEntry{}, malformed(date, "unsupported schemaVersion %d", r.SchemaVersion)
	}
	for v := r.SchemaVersion; v < constants.RecordSchemaVersion; v++ {
		upgrades[v](&r)
	}

	switch {
	case r.Date == "":
		// Water-only legacy records carry no date
		r.Date = date
	case r.Date != date:
		return models.JournalEntry{}, malformed(date, "record date %q does not match its key", r.Date)
	}

	if len(r.Gratitude) > constants.GratitudeSlots {
		return models.JournalEntry{}, malformed(date, "%d gratitude items, at most %d allowed", len(r.Gratitude), constants.GratitudeSlots)
	}
	if r.WaterIntake < 0 {
		return models.JournalEntry{}, malformed(date, "negative waterIntake %d", r.WaterIntake)
	}

	entry := models.JournalEntry{
		Date:        r.Date,
		Feelings:    dedupe(r.Feelings),
		SelfLove:    r.SelfLove,
		SelfCare:    dedupe(r.SelfCare),
		WaterIntake: r.WaterIntake,
	}
	copy(entry.Gratitude[:], r.Gratitude)
	return entry, nil
}

func malformed(date, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedRecord, KeyFor(date), fmt.Sprintf(format, args...))
}

func nonNil(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	return labels
}

// dedupe keeps the first occurrence of each label and always returns a non-nil slice.
func dedupe(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
