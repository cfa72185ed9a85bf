package constants

import "time"

const (
	AppName            = "habitual"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitual/habitual.db"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is used when printing timestamps to the terminal
	DateTimeFormat = "2006-01-02 15:04"

	// Environment variables
	EnvDBConnection = "HABITUAL_DB_CONNECTION"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitual-"
	BackupFileSuffix = ".db"

	// SQLite connection settings
	SQLiteBusyTimeout = 5 * time.Second

	// History defaults
	DefaultHistoryLimit = 20

	// Seed data
	SeedUsername = "default_user"
	SeedPassword = "password123"
	SeedEmail    = "default@example.com"
)
