package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings of the CLI.
type Config struct {
	Home      string
	DBPath    string
	BackupDir string
	Backups   int // copies kept, 0 disables
	Editor    string
	Width     int
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables, optionally seeded by
// a .env file in the tdo home directory.
func Load() (*Config, error) {
	home := getString("TDO_HOME", "")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		home = filepath.Join(userHome, ".tdo")
	}

	// Existing environment variables win over the file.
	_ = godotenv.Load(filepath.Join(home, ".env"))

	cfg := &Config{
		Home:      home,
		DBPath:    getString("TDO_DB_PATH", filepath.Join(home, "tdo.db")),
		BackupDir: getString("TDO_BACKUP_DIR", filepath.Join(home, "backups")),
		Backups:   getInt("TDO_BACKUPS", 5),
		Editor:    firstOf([]string{"TDO_EDITOR", "VISUAL", "EDITOR"}, "vi"),
		Width:     getInt("TDO_WIDTH", 0),
		Logger: LoggerConfig{
			Level:    getString("TDO_LOG_LEVEL", "warn"),
			Encoding: getString("TDO_LOG_ENCODING", "console"),
		},
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func firstOf(keys []string, fallback string) string {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	return fallback
}
