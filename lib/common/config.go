package common

import (
	"fmt"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db/codec"
	"slices"
)

// Config holds all runtime settings of lsm. The core only ever needs the
// location and format of the collection file; everything else concerns the
// command line front end.
type Config struct {
	// DataFile is the path of the persisted collection
	DataFile string
	// Format is the codec used for DataFile (json or gob)
	Format string
	// Ephemeral keeps the collection in memory only (nothing is read or written)
	Ephemeral bool

	// LogLevel is the level at which logs will be output (debug, info, warn, error)
	LogLevel string
	// Metrics dumps the store metrics to stderr after each command
	Metrics bool
	// Recover allows mutating commands to overwrite a corrupt collection file
	Recover bool
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		DataFile: "library.json",
		Format:   "json",
		LogLevel: "warn",
	}
}

// Validate checks the configuration for invalid values
func (c Config) Validate() error {
	if c.DataFile == "" && !c.Ephemeral {
		return fmt.Errorf("no data file configured")
	}
	if !slices.Contains(codec.Names(), c.Format) {
		return fmt.Errorf("invalid format %s (expected one of: %v)", c.Format, codec.Names())
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
