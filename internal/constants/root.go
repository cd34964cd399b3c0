package constants

import "time"

const (
	AppName            = "dayjournal"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/dayjournal/dayjournal.db"
	Version            = "v0.1.0"

	// EnvDBConnection overrides the default storage location when --config is not given
	EnvDBConnection = "DAYJOURNAL_DB_CONNECTION"

	// MemoryTarget selects the in-process store (nothing is persisted)
	MemoryTarget = ":memory:"

	// DateFormat is the canonical journal date format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DisplayDateFormat is how history dates are shown to the user (DD.MM.YYYY)
	DisplayDateFormat = "02.01.2006"

	// MonthFormat is the format accepted for month arguments (YYYY-MM)
	MonthFormat = "2006-01"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// JournalKeyPrefix prefixes every journal record key: journal_<YYYY-MM-DD>
	JournalKeyPrefix = "journal_"

	// RecordSchemaVersion is written into every journal record on save
	RecordSchemaVersion = 1

	// Water intake bounds used by the entry form and the water command
	MinWaterIntake = 0
	MaxWaterIntake = 8

	// GratitudeSlots is the fixed number of gratitude items per entry
	GratitudeSlots = 3

	// SeriesReadConcurrency bounds parallel per-day reads in aggregation queries
	SeriesReadConcurrency = 8

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "dayjournal-"
	BackupFileSuffix = ".db"

	// Log rotation under <configdir>/logs
	LogDirName    = "logs"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	// Redis
	RedisKeyNamespace = "dayjournal:"
	RedisScanCount    = 100
	RedisDialTimeout  = 5 * time.Second
	RedisKeyringUser  = "redis-password"
)
