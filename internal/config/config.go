package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"

	"detective/internal/debug"
	"detective/internal/observability"
)

// Config is everything the detective binary can be told from outside.
type Config struct {
	Debug        bool
	DebugLogPath string
	JournalPath  string
	TUI          bool
	Tracing      observability.Config
}

// Load reads the configuration through lookupEnv, which has the signature of os.LookupEnv.
func Load(lookupEnv func(string) (string, bool)) Config {
	cfg := Config{
		DebugLogPath: debug.DefaultLogPath,
		Tracing:      observability.LoadConfigFromEnv(lookupEnv),
	}
	if v, ok := lookupEnv("DEBUG"); ok {
		cfg.Debug = isTrue(v)
	}
	if v, ok := lookupEnv("DEBUG_LOG"); ok && v != "" {
		cfg.DebugLogPath = v
	}
	if v, ok := lookupEnv("DETECTIVE_JOURNAL"); ok {
		cfg.JournalPath = v
	}
	if v, ok := lookupEnv("DETECTIVE_TUI"); ok {
		cfg.TUI = isTrue(v)
	}
	return cfg
}

// LoadDotEnv loads the given files into the process environment. Missing
// files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
