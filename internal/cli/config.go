package cli

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigPath is looked up in the working directory when
// QLINT_CONFIG does not point elsewhere.
const defaultConfigPath = ".qlint.yml"

// ToolConfig carries optional defaults for the linter. Flags override
// environment variables, which override the config file.
type ToolConfig struct {
	Format    string `yaml:"format" env:"QLINT_FORMAT" env-default:"text"`
	Color     string `yaml:"color" env:"QLINT_COLOR" env-default:"auto"`
	UI        string `yaml:"ui" env:"QLINT_UI" env-default:"auto"`
	HistoryDB string `yaml:"history_db" env:"QLINT_HISTORY_DB"`
}

// loadToolConfig reads the optional config file and environment. A
// missing config file is not an error.
func loadToolConfig() (ToolConfig, error) {
	var cfg ToolConfig
	path := os.Getenv("QLINT_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return ToolConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return ToolConfig{}, fmt.Errorf("read environment config: %w", err)
	}
	return cfg, nil
}
