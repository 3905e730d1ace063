package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// defaultConfigFile is looked for in the working directory when no
// -config flag is given.
const defaultConfigFile = "ircdump.toml"

// appConfig configures the dumper. Every field is optional and flags
// override whatever the file sets.
type appConfig struct {
	// Input is the transcript to read. Empty or - means stdin.
	Input string `toml:"input"`
	// Format selects the rendering: wire, joined or fields.
	Format string `toml:"format"`
	// LogLevel is one of log15's level names.
	LogLevel string `toml:"log_level"`
}

// loadConfig reads a toml config file. A missing file at the default
// path is fine, a missing explicitly requested file is an error.
func loadConfig(path string, explicit bool) (*appConfig, error) {
	cfg := &appConfig{Format: "wire", LogLevel: "info"}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return cfg, nil
}
