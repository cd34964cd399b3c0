package constants

const (
	// Preference keys, shared with the journal records in the same key-value space
	SettingColorTheme           = "appTheme"
	SettingAppearance           = "app_theme"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingNotificationTime     = "notification_time"

	// Appearance values
	AppearanceLight = "light"
	AppearanceDark  = "dark"
	AppearanceAuto  = "auto"

	// Default preference values
	DefaultColorTheme           = "blue"
	DefaultAppearance           = AppearanceLight
	DefaultNotificationsEnabled = false
	DefaultNotificationTime     = ""
)

// ColorThemes lists the selectable palette names in display order.
var ColorThemes = []string{
	"red", "orange", "amber", "yellow", "lime", "green", "emerald", "teal", "cyan",
	"sky", "blue", "indigo", "violet", "purple", "fuchsia", "pink", "rose",
}

// ThemeColors maps a palette name to its 300/500/700 shades.
var ThemeColors = map[string][3]string{
	"red":     {"#fca5a5", "#ef4444", "#b91c1c"},
	"orange":  {"#fdba74", "#f97316", "#c2410c"},
	"amber":   {"#fcd34d", "#f59e0b", "#b45309"},
	"yellow":  {"#fde047", "#eab308", "#a16207"},
	"lime":    {"#bef264", "#84cc16", "#4d7c0f"},
	"green":   {"#86efac", "#22c55e", "#15803d"},
	"emerald": {"#6ee7b7", "#10b981", "#047857"},
	"teal":    {"#5eead4", "#14b8a6", "#0f766e"},
	"cyan":    {"#67e8f9", "#06b6d4", "#0e7490"},
	"sky":     {"#7dd3fc", "#0ea5e9", "#0369a1"},
	"blue":    {"#93c5fd", "#3b82f6", "#1d4ed8"},
	"indigo":  {"#a5b4fc", "#6366f1", "#4338ca"},
	"violet":  {"#c4b5fd", "#8b5cf6", "#6d28d9"},
	"purple":  {"#d8b4fe", "#a855f7", "#7e22ce"},
	"fuchsia": {"#f0abfc", "#d946ef", "#a21caf"},
	"pink":    {"#f9a8d4", "#ec4899", "#be185d"},
	"rose":    {"#fda4af", "#f43f5e", "#be123c"},
}
