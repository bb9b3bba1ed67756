package configs

import (
	"fmt"
	"strings"

	"log-analyzer/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. LOG_ANALYZER_LOG_LEVEL.
const EnvPrefix = "LOG_ANALYZER"

var defaults = map[string]any{
	"server.port":                8080,
	"server.read_header_timeout": 5,
	"server.read_timeout":        30,
	"server.write_timeout":       30,
	"server.idle_timeout":        60,
	"server.max_body_bytes":      32 * 1024 * 1024,
	"log.level":                  "info",
	"log.format":                 "console",
	"file_storage.root_dir":      ".",
	"analysis.default_format":    "markdown",
	"analysis.filter_mode":       "substring",
	"analysis.http_timeout":      30,
	"analysis.report_name":       "report",
}

// LoadConfig builds the configuration from defaults, an optional YAML file and LOG_ANALYZER_*
// environment variables, in increasing order of precedence, and validates it.
// An empty configPath skips the file.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validators.Describe(err), ", "))
	}

	return &cfg, nil
}
