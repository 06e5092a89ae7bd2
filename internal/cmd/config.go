package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/adapter/parser"
	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/logging"
)

// Config keys. Nested keys map to MESSAGE_ANALYSER_LOG_LEVEL and so on.
const (
	keyRollingWindow = "rolling_window"
	keyTopEmoji      = "top_emoji"
	keyFormat        = "format"
	keyOutput        = "output"
	keyMetadataFile  = "metadata_file"
	keyMetricsFile   = "metrics_file"
	keyLogLevel      = "log.level"
	keyLogEncoding   = "log.encoding"
	keyLogOutput     = "log.output"
	keyLogDev        = "log.dev"
)

// settings is the configuration of one run, read once at startup.
type settings struct {
	Aggregate    domain.AggregateOptions
	Format       string
	Output       string
	MetadataFile string
	MetricsFile  string
	Log          logging.Config
}

func setDefaults(v *viper.Viper) {
	defaults := domain.DefaultAggregateOptions()
	logDefaults := logging.DefaultConfig()

	v.SetDefault(keyRollingWindow, defaults.RollingWindow)
	v.SetDefault(keyTopEmoji, defaults.TopEmoji)
	v.SetDefault(keyFormat, "text")
	v.SetDefault(keyOutput, "")
	v.SetDefault(keyMetadataFile, parser.DefaultMetadataFile)
	v.SetDefault(keyMetricsFile, "")
	v.SetDefault(keyLogLevel, logDefaults.Level)
	v.SetDefault(keyLogEncoding, logDefaults.Encoding)
	v.SetDefault(keyLogOutput, logDefaults.OutputPath)
	v.SetDefault(keyLogDev, logDefaults.DevMode)
}

func loadSettings(v *viper.Viper) (settings, error) {
	s := settings{
		Aggregate: domain.AggregateOptions{
			RollingWindow: v.GetInt(keyRollingWindow),
			TopEmoji:      v.GetInt(keyTopEmoji),
		},
		Format:       v.GetString(keyFormat),
		Output:       v.GetString(keyOutput),
		MetadataFile: v.GetString(keyMetadataFile),
		MetricsFile:  v.GetString(keyMetricsFile),
		Log: logging.Config{
			Level:      v.GetString(keyLogLevel),
			Encoding:   v.GetString(keyLogEncoding),
			OutputPath: v.GetString(keyLogOutput),
			DevMode:    v.GetBool(keyLogDev),
		},
	}

	if s.Aggregate.RollingWindow < 1 {
		return settings{}, fmt.Errorf("%s must be at least 1, got %d", keyRollingWindow, s.Aggregate.RollingWindow)
	}
	if s.Aggregate.TopEmoji < 1 {
		return settings{}, fmt.Errorf("%s must be at least 1, got %d", keyTopEmoji, s.Aggregate.TopEmoji)
	}
	if s.MetadataFile == "" {
		return settings{}, fmt.Errorf("%s must not be empty", keyMetadataFile)
	}
	return s, nil
}

// defaultConfigFile is what init writes.
func defaultConfigFile() map[string]interface{} {
	defaults := domain.DefaultAggregateOptions()
	logDefaults := logging.DefaultConfig()
	return map[string]interface{}{
		keyRollingWindow: defaults.RollingWindow,
		keyTopEmoji:      defaults.TopEmoji,
		keyFormat:        "text",
		keyMetadataFile:  parser.DefaultMetadataFile,
		keyMetricsFile:   "",
		"log": map[string]interface{}{
			"level":    logDefaults.Level,
			"encoding": logDefaults.Encoding,
			"output":   logDefaults.OutputPath,
			"dev":      logDefaults.DevMode,
		},
	}
}
