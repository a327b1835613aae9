// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"asciidraw/persist"
	"asciidraw/store"
)

// Config holds the settings shared by the editor and the document service.
type Config struct {
	Backend      string
	DataPath     string
	Document     string
	Addr         string
	LogLevel     string
	HistoryDepth int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load reads the ASCIIDRAW_* environment variables, falling back to
// defaults for unset or malformed values.
func Load() *Config {
	return &Config{
		Backend:      getEnv("ASCIIDRAW_BACKEND", persist.BackendFile),
		DataPath:     getEnv("ASCIIDRAW_DATA", defaultDataPath()),
		Document:     getEnv("ASCIIDRAW_DOCUMENT", store.DefaultDocumentKey),
		Addr:         getEnv("ASCIIDRAW_ADDR", ":3000"),
		LogLevel:     getEnv("ASCIIDRAW_LOG_LEVEL", "off"),
		HistoryDepth: getEnvAsInt("ASCIIDRAW_HISTORY", 100),
		ReadTimeout:  time.Duration(getEnvAsInt("ASCIIDRAW_READ_TIMEOUT", 10)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("ASCIIDRAW_WRITE_TIMEOUT", 10)) * time.Second,
	}
}

// StoragePath returns the path handed to persist.Open. The sqlite backend
// gets a database file inside DataPath unless DataPath already names one.
func (c *Config) StoragePath() string {
	if c.Backend == persist.BackendSQLite && !strings.HasSuffix(c.DataPath, ".db") {
		return filepath.Join(c.DataPath, "asciidraw.db")
	}
	return c.DataPath
}

func defaultDataPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "asciidraw")
	}
	return ".asciidraw"
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
