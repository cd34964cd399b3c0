package models

import "github.com/julianstephens/dayjournal/internal/constants"

// JournalEntry is one day's journal record. Date is both its identity and its store key.
type JournalEntry struct {
	Date        string                           `json:"date" validate:"required,journaldate"`
	Feelings    []string                         `json:"feelings" validate:"unique,dive,required"`
	SelfLove    string                           `json:"selfLove"`
	SelfCare    []string                         `json:"selfCare" validate:"unique,dive,required"`
	Gratitude   [constants.GratitudeSlots]string `json:"gratitude"`
	WaterIntake int                              `json:"waterIntake" validate:"gte=0"`
}

// NewJournalEntry returns the default entry for a date that has nothing stored yet.
func NewJournalEntry(date string) JournalEntry {
	return JournalEntry{
		Date:     date,
		Feelings: []string{},
		SelfCare: []string{},
	}
}

// IsBlank reports whether the entry carries no user data beyond its date.
func (e JournalEntry) IsBlank() bool {
	if len(e.Feelings) > 0 || len(e.SelfCare) > 0 || e.SelfLove != "" || e.WaterIntake != 0 {
		return false
	}
	for _, g := range e.Gratitude {
		if g != "" {
			return false
		}
	}
	return true
}

// GratitudeItems returns the non-empty gratitude slots in order.
func (e JournalEntry) GratitudeItems() []string {
	var items []string
	for _, g := range e.Gratitude {
		if g != "" {
			items = append(items, g)
		}
	}
	return items
}
