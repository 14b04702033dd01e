package env

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/nlncalc/pkg/utils"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file.
// ENV_PATH overrides defaultPath. A missing file is only an error in local mode.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if env == "local" {
			return fmt.Errorf("failed to load %s: %w", envPath, err)
		}
		slog.Debug("Skipping .env ...", "path", envPath)
	}

	return nil
}

// Int reads an integer variable, def when unset.
func Int(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return n, nil
}

// Bool reads a boolean variable, false when unset.
func Bool(key string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

// List splits a comma separated variable and drops empty entries.
func List(key string) []string {
	items := strings.Split(os.Getenv(key), ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return utils.RemoveEmptyStrings(items)
}
