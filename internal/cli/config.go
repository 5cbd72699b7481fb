package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is picked up from the working directory when present.
const defaultConfigFile = appName + ".toml"

// Config holds optional defaults loaded from a depdot.toml file.
// Flags set explicitly on the command line win over config values.
type Config struct {
	Database             string `toml:"database"`
	File                 string `toml:"file"`
	MaxNodes             int    `toml:"max_nodes"`
	RemoveDisconnected   bool   `toml:"remove_disconnected"`
	RemoveSelfImportOnly bool   `toml:"remove_selfimport_only"`
}

// loadConfig reads a TOML config from path. A missing file is only an error
// when the path was given explicitly; the implicit default file is optional.
func loadConfig(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
