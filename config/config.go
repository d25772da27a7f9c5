package config

import (
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	SourceSimulate = "simulate"
	SourceLogfile  = "logfile"
	SourceCommand  = "command"
)

type PopulationConfig struct {
	Path        string `mapstructure:"path"`
	LabelColumn string `mapstructure:"label_column"`
}

type SourceConfig struct {
	Mode    string   `mapstructure:"mode"`
	Draws   int      `mapstructure:"draws"`
	Seed    uint64   `mapstructure:"seed"`
	LogPath string   `mapstructure:"log_path"`
	Pattern string   `mapstructure:"pattern"`
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
	Stdin   string   `mapstructure:"stdin"`
	Timeout string   `mapstructure:"timeout"`
}

type AnalysisConfig struct {
	MaxCV       float64 `mapstructure:"max_cv"`
	MinCoverage float64 `mapstructure:"min_coverage"`
	Top         int     `mapstructure:"top"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Environment string           `mapstructure:"environment"`
	Population  PopulationConfig `mapstructure:"population"`
	Source      SourceConfig     `mapstructure:"source"`
	Analysis    AnalysisConfig   `mapstructure:"analysis"`
	Logging     LoggingConfig    `mapstructure:"logging"`
}

func Load() (*Config, error) {
	viper.SetDefault("environment", EnvDev)
	viper.SetDefault("population.label_column", "BankId")
	viper.SetDefault("source.mode", SourceSimulate)
	viper.SetDefault("source.draws", 200)
	viper.SetDefault("source.seed", 1)
	viper.SetDefault("source.stdin", "Y\n")
	viper.SetDefault("source.timeout", "20s")
	viper.SetDefault("analysis.max_cv", 1.0)
	viper.SetDefault("analysis.min_coverage", 0.5)
	viper.SetDefault("analysis.top", 5)
	viper.SetDefault("logging.level", LogLevelInfo)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Info("config file not found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", slog.String("file", viper.ConfigFileUsed()))
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment,
			validation.Required,
			validation.In(EnvDev, EnvStaging, EnvProd),
		),
		validation.Field(&c.Logging,
			validation.Required,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
				)
			}),
		),
		validation.Field(&c.Population,
			validation.Required,
			validation.By(func(value interface{}) error {
				pc, ok := value.(PopulationConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a PopulationConfig")
				}
				return validation.ValidateStruct(&pc,
					validation.Field(&pc.Path, validation.Required),
					validation.Field(&pc.LabelColumn, validation.Required),
				)
			}),
		),
		validation.Field(&c.Source,
			validation.Required,
			validation.By(validateSourceConfig),
		),
		validation.Field(&c.Analysis,
			validation.Required,
			validation.By(validateAnalysisConfig),
		),
	)
}

func validateSourceConfig(value interface{}) error {
	sc, ok := value.(SourceConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a SourceConfig")
	}

	if err := validation.Validate(sc.Mode,
		validation.Required,
		validation.In(SourceSimulate, SourceLogfile, SourceCommand),
	); err != nil {
		return err
	}

	switch sc.Mode {
	case SourceSimulate:
		if sc.Draws < 1 {
			return validation.NewError("validation_invalid_draws", "draws must be at least 1 in simulate mode")
		}
	case SourceLogfile:
		if sc.LogPath == "" {
			return validation.NewError("validation_missing_log_path", "log_path is required in logfile mode")
		}
	case SourceCommand:
		if sc.Command == "" {
			return validation.NewError("validation_missing_command", "command is required in command mode")
		}
		if err := validateDuration(sc.Timeout); err != nil {
			return err
		}
	}

	return nil
}

func validateAnalysisConfig(value interface{}) error {
	ac, ok := value.(AnalysisConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be an AnalysisConfig")
	}

	if ac.MaxCV <= 0 {
		return validation.NewError("validation_invalid_max_cv", "max_cv must be greater than zero")
	}

	if ac.MinCoverage < 0 || ac.MinCoverage > 1 {
		return validation.NewError("validation_invalid_min_coverage", "min_coverage must be between 0 and 1")
	}

	if ac.Top < 0 {
		return validation.NewError("validation_invalid_top", "top cannot be negative")
	}

	return nil
}

func validateDuration(value interface{}) error {
	durationStr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if _, err := time.ParseDuration(durationStr); err != nil {
		return validation.NewError("validation_invalid_duration", "must be a valid duration (e.g., 2s, 5m, 1h)")
	}

	return nil
}
