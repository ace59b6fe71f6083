package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/pomodesk/internal/logging"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PD"

	configName = "config"
	configType = "toml"

	KeyDataRoot  = "data.root"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

type Config struct {
	// DataRoot overrides the host-supplied application data root when set.
	DataRoot string
	Log      logging.Config
}

// Load reads config.toml from the first of searchDirs that has one, then
// applies PD_* environment overrides (PD_DATA_ROOT, PD_LOG_LEVEL, ...).
func Load(v *viper.Viper, searchDirs ...string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	for _, dir := range searchDirs {
		if strings.TrimSpace(dir) != "" {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDataRoot, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, logging.FormatConsole)

	if len(searchDirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	return Config{
		DataRoot: strings.TrimSpace(v.GetString(KeyDataRoot)),
		Log: logging.Config{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}, nil
}
