// Package config loads defaults for the gridpath command from the
// environment, after merging an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridpath/grid"
)

// Environment variable names.
const (
	EnvRows    = "GRIDPATH_ROWS"
	EnvCols    = "GRIDPATH_COLS"
	EnvFill    = "GRIDPATH_FILL"
	EnvTimeout = "GRIDPATH_TIMEOUT"
)

// ErrBadValue indicates an environment variable that cannot be parsed or is out of range.
var ErrBadValue = errors.New("config: invalid environment value")

// Config holds the command's configuration values.
type Config struct {
	Rows    int           // Rows of a generated grid
	Cols    int           // Columns of a generated grid
	Fill    int           // Cost of every cell in a generated grid
	Timeout time.Duration // Search deadline; 0 disables it
}

// Default returns the reference configuration: a 20×20 grid of open cells
// and no search deadline.
func Default() Config {
	return Config{
		Rows: grid.DefaultRows,
		Cols: grid.DefaultCols,
		Fill: grid.DefaultCost,
	}
}

// Load merges the given .env files into the process environment without
// overriding variables already set, then reads the configuration.
// With no files named, an optional ".env" in the working directory is
// used and its absence is not an error. A named file must exist.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading env file: %w", err)
		}
		log.Printf("[APP] [INFO] .env file not found, using process environment")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment,
// falling back to Default for unset variables.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error
	if cfg.Rows, err = getEnvAsInt(EnvRows, cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = getEnvAsInt(EnvCols, cfg.Cols); err != nil {
		return Config{}, err
	}
	if cfg.Fill, err = getEnvAsInt(EnvFill, cfg.Fill); err != nil {
		return Config{}, err
	}
	if cfg.Timeout, err = getEnvAsDuration(EnvTimeout, cfg.Timeout); err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that dimensions are positive and fill and timeout are non-negative.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return fmt.Errorf("%w: %s=%d must be positive", ErrBadValue, EnvRows, c.Rows)
	case c.Cols <= 0:
		return fmt.Errorf("%w: %s=%d must be positive", ErrBadValue, EnvCols, c.Cols)
	case c.Fill < 0:
		return fmt.Errorf("%w: %s=%d must be non-negative", ErrBadValue, EnvFill, c.Fill)
	case c.Timeout < 0:
		return fmt.Errorf("%w: %s=%v must be non-negative", ErrBadValue, EnvTimeout, c.Timeout)
	}
	return nil
}

// getEnvAsInt retrieves an environment variable as an integer, or def if unset.
func getEnvAsInt(key string, def int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrBadValue, key, err)
	}
	return v, nil
}

// getEnvAsDuration retrieves an environment variable as a time.Duration, or def if unset.
func getEnvAsDuration(key string, def time.Duration) (time.Duration, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %v", ErrBadValue, key, err)
	}
	return v, nil
}
