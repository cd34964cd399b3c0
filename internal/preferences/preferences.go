// Package preferences loads and saves display and reminder settings in the shared key-value store.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/logger"
	"github.com/julianstephens/dayjournal/internal/models"
	"github.com/julianstephens/dayjournal/internal/storage"
	"github.com/julianstephens/dayjournal/internal/validation"
)

// Defaults returns the preferences used before anything is saved.
func Defaults() models.Preferences {
	return models.Preferences{
		ColorTheme:           constants.DefaultColorTheme,
		Appearance:           constants.DefaultAppearance,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		NotificationTime:     constants.DefaultNotificationTime,
	}
}

type Manager struct {
	kv storage.Provider
}

func NewManager(kv storage.Provider) *Manager {
	return &Manager{kv: kv}
}

// Load reads every preference key. Missing keys and values this version does not
// recognize fall back to their defaults.
func (m *Manager) Load(ctx context.Context) (models.Preferences, error) {
	prefs := Defaults()

	theme, err := m.read(ctx, constants.SettingColorTheme)
	if err != nil {
		return prefs, err
	}
	if theme != "" {
		if slices.Contains(constants.ColorThemes, theme) {
			prefs.ColorTheme = theme
		} else {
			logger.Warn("Unknown color theme, using default", "value", theme)
		}
	}

	appearance, err := m.read(ctx, constants.SettingAppearance)
	if err != nil {
		return prefs, err
	}
	switch appearance {
	case "":
	case constants.AppearanceLight, constants.AppearanceDark, constants.AppearanceAuto:
		prefs.Appearance = appearance
	default:
		logger.Warn("Unknown appearance, using default", "value", appearance)
	}

	enabled, err := m.read(ctx, constants.SettingNotificationsEnabled)
	if err != nil {
		return prefs, err
	}
	if enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			prefs.NotificationsEnabled = b
		} else {
			logger.Warn("Unreadable notifications flag, using default", "value", enabled)
		}
	}

	at, err := m.read(ctx, constants.SettingNotificationTime)
	if err != nil {
		return prefs, err
	}
	if at != "" {
		if validation.IsClockTime(at) {
			prefs.NotificationTime = at
		} else {
			logger.Warn("Unreadable notification time, ignoring", "value", at)
		}
	}

	return prefs, nil
}

// read returns "" for a missing key.
func (m *Manager) read(ctx context.Context, key string) (string, error) {
	v, err := m.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return v, nil
}

// Save validates prefs and writes each key.
func (m *Manager) Save(ctx context.Context, prefs models.Preferences) error {
	if err := validation.ValidatePreferences(prefs); err != nil {
		return err
	}

	values := []struct{ key, value string }{
		{constants.SettingColorTheme, prefs.ColorTheme},
		{constants.SettingAppearance, prefs.Appearance},
		{constants.SettingNotificationsEnabled, strconv.FormatBool(prefs.NotificationsEnabled)},
		{constants.SettingNotificationTime, prefs.NotificationTime},
	}
	for _, v := range values {
		if v.value == "" {
			if err := m.kv.Remove(ctx, v.key); err != nil {
				return fmt.Errorf("failed to clear %s: %w", v.key, err)
			}
			continue
		}
		if err := m.kv.Set(ctx, v.key, v.value); err != nil {
			return fmt.Errorf("failed to save %s: %w", v.key, err)
		}
	}
	logger.Debug("Saved preferences", "theme", prefs.ColorTheme, "appearance", prefs.Appearance)
	return nil
}

// Palette returns the 300/500/700 shades for the theme, falling back to the default theme.
func Palette(theme string) [3]string {
	if p, ok := constants.ThemeColors[theme]; ok {
		return p
	}
	return constants.ThemeColors[constants.DefaultColorTheme]
}
