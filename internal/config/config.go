// Package config loads the emulator's configuration file. All settings have
// sensible defaults, so running without a config file is fully supported.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the emulator settings.
type Config struct {
	// InputPort and OutputPort name the MIDI ports to connect to. Empty
	// means auto-detect using DetectKeywords.
	InputPort  string
	OutputPort string

	// DetectKeywords are substrings matched against port names when
	// auto-detecting the controller connection.
	DetectKeywords []string

	// Verbose enables raw payload logging.
	Verbose bool
}

const (
	configName = "config"
	configType = "yaml"

	configKeyInputPort      = "input_port"
	configKeyOutputPort     = "output_port"
	configKeyDetectKeywords = "detect_keywords"
	configKeyVerbose        = "verbose"
)

// The controller shows up under these names when connected over USB.
var defaultDetectKeywords = []string{"Move", "Ableton"}

// Load reads the config file (config.yaml in the working directory, or the
// explicit path if one is given) and returns the populated settings.
// A missing file is fine; defaults apply.
func Load(logger *zap.SugaredLogger, path string) (*Config, error) {
	logger = logger.Named("config")

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
	}

	v.SetDefault(configKeyInputPort, "")
	v.SetDefault(configKeyOutputPort, "")
	v.SetDefault(configKeyDetectKeywords, defaultDetectKeywords)
	v.SetDefault(configKeyVerbose, false)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && path == "" {
			logger.Debug("No config file found, using defaults")
		} else {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		logger.Debugw("Loaded config", "path", v.ConfigFileUsed())
	}

	cfg := &Config{
		InputPort:      v.GetString(configKeyInputPort),
		OutputPort:     v.GetString(configKeyOutputPort),
		DetectKeywords: v.GetStringSlice(configKeyDetectKeywords),
		Verbose:        v.GetBool(configKeyVerbose),
	}

	if len(cfg.DetectKeywords) == 0 {
		cfg.DetectKeywords = defaultDetectKeywords
	}

	return cfg, nil
}
