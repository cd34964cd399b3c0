// Package entryform builds the huh form used to edit one journal day.
package entryform

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/models"
)

// Model holds the editable fields while the form is open.
type Model struct {
	Feelings  []string
	SelfLove  string
	SelfCare  []string
	Gratitude [constants.GratitudeSlots]string
	Water     string
}

// NewModel copies entry into form fields.
func NewModel(entry models.JournalEntry) *Model {
	return &Model{
		Feelings:  slices.Clone(entry.Feelings),
		SelfLove:  entry.SelfLove,
		SelfCare:  slices.Clone(entry.SelfCare),
		Gratitude: entry.Gratitude,
		Water:     strconv.Itoa(entry.WaterIntake),
	}
}

// Entry builds the full replacement entry for date from the form fields.
func (fm *Model) Entry(date string) (models.JournalEntry, error) {
	water, err := parseWater(fm.Water)
	if err != nil {
		return models.JournalEntry{}, err
	}
	entry := models.NewJournalEntry(date)
	entry.Feelings = append(entry.Feelings, fm.Feelings...)
	entry.SelfLove = strings.TrimSpace(fm.SelfLove)
	entry.SelfCare = append(entry.SelfCare, fm.SelfCare...)
	for i, g := range fm.Gratitude {
		entry.Gratitude[i] = strings.TrimSpace(g)
	}
	entry.WaterIntake = water
	return entry, nil
}

func parseWater(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("water intake must be a whole number of glasses")
	}
	if n < constants.MinWaterIntake || n > constants.MaxWaterIntake {
		return 0, fmt.Errorf("water intake must be between %d and %d", constants.MinWaterIntake, constants.MaxWaterIntake)
	}
	return n, nil
}

// labelOptions offers the catalog plus any stored labels the catalog lacks.
func labelOptions(catalog, current []string) []huh.Option[string] {
	labels := slices.Clone(catalog)
	for _, l := range current {
		if !slices.Contains(labels, l) {
			labels = append(labels, l)
		}
	}
	return huh.NewOptions(labels...)
}

// New creates the interactive editor for one day's entry.
func New(date string, fm *Model) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("How do you feel today?").
				Description(date).
				Options(labelOptions(constants.FeelingOptions, fm.Feelings)...).
				Value(&fm.Feelings),
			huh.NewText().
				Title("Self-love").
				Description("Something kind about yourself").
				Value(&fm.SelfLove),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Self-care").
				Options(labelOptions(constants.SelfCareOptions, fm.SelfCare)...).
				Value(&fm.SelfCare),
			huh.NewInput().
				Title("Water (glasses)").
				Description(fmt.Sprintf("%d-%d", constants.MinWaterIntake, constants.MaxWaterIntake)).
				Value(&fm.Water).
				Validate(func(s string) error {
					_, err := parseWater(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewInput().Title("Grateful for (1)").Value(&fm.Gratitude[0]),
			huh.NewInput().Title("Grateful for (2)").Value(&fm.Gratitude[1]),
			huh.NewInput().Title("Grateful for (3)").Value(&fm.Gratitude[2]),
		),
	).WithTheme(huh.ThemeDracula())
}
