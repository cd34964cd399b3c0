package models

// Preferences holds display and reminder settings. Reminders are stored but never delivered.
type Preferences struct {
	ColorTheme           string `json:"color_theme" validate:"required,colortheme"`
	Appearance           string `json:"appearance" validate:"required,oneof=light dark auto"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	NotificationTime     string `json:"notification_time" validate:"omitempty,hhmm"` // HH:MM, empty when unset
}
