package entries

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/julianstephens/dayjournal/internal/cli"
	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/models"
	"github.com/julianstephens/dayjournal/internal/tui/components/entryform"
)

type ShowCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD, today or yesterday). Defaults to today."`
	JSON bool   `help:"Print the entry as JSON."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	entry, found, err := ctx.Journal.Get(ctx.Ctx, date)
	if err != nil {
		return err
	}

	if c.JSON {
		if !found {
			entry = models.NewJournalEntry(date)
		}
		b, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return err
		}
		ctx.Println(string(b))
		return nil
	}

	if !found {
		ctx.Printf("No entry for %s.\n", cli.DisplayDate(date))
		return nil
	}
	printEntry(ctx, entry)
	return nil
}

func printEntry(ctx *cli.Context, e models.JournalEntry) {
	ctx.Printf("%s\n", cli.DisplayDate(e.Date))
	ctx.Printf("  Feelings:   %s\n", joinOrDash(e.Feelings))
	ctx.Printf("  Self-love:  %s\n", orDash(e.SelfLove))
	ctx.Printf("  Self-care:  %s\n", joinOrDash(e.SelfCare))
	ctx.Printf("  Gratitude:  %s\n", joinOrDash(e.GratitudeItems()))
	ctx.Printf("  Water:      %d/%d\n", e.WaterIntake, constants.MaxWaterIntake)
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// SaveCmd writes a complete entry from flags, replacing anything stored for the date.
type SaveCmd struct {
	Date      string   `arg:"" help:"Date (YYYY-MM-DD, today or yesterday)."`
	Feeling   []string `help:"Feeling label (repeatable)."`
	SelfCare  []string `name:"self-care" help:"Self-care label (repeatable)."`
	SelfLove  string   `name:"self-love" help:"Self-love note."`
	Gratitude []string `help:"Gratitude item (up to 3, repeatable)."`
	Water     int      `help:"Glasses of water (0-8)." default:"0"`
}

func (c *SaveCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if len(c.Gratitude) > constants.GratitudeSlots {
		return fmt.Errorf("at most %d gratitude items allowed, got %d", constants.GratitudeSlots, len(c.Gratitude))
	}
	if c.Water < constants.MinWaterIntake || c.Water > constants.MaxWaterIntake {
		return fmt.Errorf("water must be between %d and %d", constants.MinWaterIntake, constants.MaxWaterIntake)
	}

	entry := models.NewJournalEntry(date)
	entry.Feelings = append(entry.Feelings, c.Feeling...)
	entry.SelfCare = append(entry.SelfCare, c.SelfCare...)
	entry.SelfLove = c.SelfLove
	copy(entry.Gratitude[:], c.Gratitude)
	entry.WaterIntake = c.Water

	if err := ctx.Journal.Put(ctx.Ctx, entry); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	ctx.Printf("✓ Saved entry for %s\n", cli.DisplayDate(date))
	return nil
}

// EditCmd opens the interactive form prefilled with the stored entry.
type EditCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD, today or yesterday). Defaults to today."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	current, err := ctx.Journal.GetEntry(ctx.Ctx, date)
	if err != nil {
		return err
	}

	fm := entryform.NewModel(current)
	if err := entryform.New(cli.DisplayDate(date), fm).Run(); err != nil {
		return fmt.Errorf("entry form: %w", err)
	}

	entry, err := fm.Entry(date)
	if err != nil {
		return err
	}
	if err := ctx.Journal.Put(ctx.Ctx, entry); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	ctx.Printf("✓ Saved entry for %s\n", cli.DisplayDate(date))
	return nil
}

// WaterCmd changes only the water intake, keeping the rest of the entry.
type WaterCmd struct {
	Date   string `arg:"" help:"Date (YYYY-MM-DD, today or yesterday)."`
	Amount string `arg:"" help:"Glasses of water, or +N / -N to adjust."`
}

func (c *WaterCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	entry, err := ctx.Journal.GetEntry(ctx.Ctx, date)
	if err != nil {
		return err
	}

	water, err := applyWater(entry.WaterIntake, c.Amount)
	if err != nil {
		return err
	}
	entry.WaterIntake = water

	if err := ctx.Journal.Put(ctx.Ctx, entry); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	ctx.Printf("💧 %s: %d/%d glasses\n", cli.DisplayDate(date), water, constants.MaxWaterIntake)
	return nil
}

// applyWater sets or adjusts current and clamps the result to the form's range.
func applyWater(current int, amount string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(amount, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid water amount %q", amount)
	}
	if strings.HasPrefix(amount, "+") || strings.HasPrefix(amount, "-") {
		n += current
	}
	return max(constants.MinWaterIntake, min(constants.MaxWaterIntake, n)), nil
}

type DeleteCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD, today or yesterday)."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	if err := ctx.Journal.Delete(ctx.Ctx, date); err != nil {
		return err
	}
	ctx.Printf("✓ Deleted entry for %s\n", cli.DisplayDate(date))
	return nil
}

// ListCmd prints the history, newest first.
type ListCmd struct {
	Limit int `help:"Show at most this many entries (0 for all)." default:"0"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	all, err := ctx.Journal.ListAll(ctx.Ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		ctx.Println("No journal entries yet.")
		return nil
	}
	if c.Limit > 0 && len(all) > c.Limit {
		all = all[:c.Limit]
	}

	for _, e := range all {
		ctx.Printf("%s  💧%d  %s\n", cli.DisplayDate(e.Date), e.WaterIntake, summary(e))
	}
	return nil
}

func summary(e models.JournalEntry) string {
	if len(e.Feelings) > 0 {
		return strings.Join(e.Feelings, ", ")
	}
	if e.SelfLove != "" {
		return e.SelfLove
	}
	return ""
}
