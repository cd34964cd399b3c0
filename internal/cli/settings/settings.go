package settings

import (
	"fmt"
	"strings"

	"github.com/julianstephens/dayjournal/internal/cli"
	"github.com/julianstephens/dayjournal/internal/constants"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme                *string `help:"Color theme (red, orange, ..., rose)."`
	Appearance           *string `help:"Appearance: light, dark or auto."`
	NotificationsEnabled *bool   `name:"notifications" help:"Enable or disable the daily reminder."`
	NotificationTime     *string `name:"notification-time" help:"Reminder time as HH:MM, or empty to clear."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Preferences.Load(ctx.Ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		reminder := prefs.NotificationTime
		if reminder == "" {
			reminder = "(not set)"
		}
		ctx.Println("Current Settings:")
		ctx.Printf("  Color Theme:           %s\n", prefs.ColorTheme)
		ctx.Printf("  Appearance:            %s\n", prefs.Appearance)
		ctx.Println("\nReminder Settings:")
		ctx.Printf("  Notifications Enabled: %v\n", prefs.NotificationsEnabled)
		ctx.Printf("  Notification Time:     %s\n", reminder)
		ctx.Printf("\nAvailable themes: %s\n", strings.Join(constants.ColorThemes, ", "))
		return nil
	}

	updated := false
	if c.Theme != nil {
		prefs.ColorTheme = *c.Theme
		updated = true
	}
	if c.Appearance != nil {
		prefs.Appearance = *c.Appearance
		updated = true
	}
	if c.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.NotificationTime != nil {
		prefs.NotificationTime = *c.NotificationTime
		updated = true
	}

	if updated {
		if err := ctx.Preferences.Save(ctx.Ctx, prefs); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Prefs = prefs
		ctx.Println("Settings updated successfully.")
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
