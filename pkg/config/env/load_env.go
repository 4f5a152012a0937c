package env

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file into the process environment.
// The ENV_PATH environment variable overrides defaultPath. A missing file is
// only an error when env is "local".
func LoadDotEnv(env string, defaultPath string) error {
	envPath := defaultPath
	if p := os.Getenv("ENV_PATH"); p != "" {
		envPath = p
	} else {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
	}

	if _, err := os.Stat(envPath); errors.Is(err, fs.ErrNotExist) && env != "local" {
		slog.Debug("Skipping .env ...", "path", envPath)
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("load %s: %w", envPath, err)
	}
	return nil
}
