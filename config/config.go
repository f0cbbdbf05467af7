// Package config loads traitchain settings with Viper.
//
// Precedence, lowest first: SetDefaults → traitchain.toml → TRAITCHAIN_*
// environment variables → command-line flags bound by the caller.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. TRAITCHAIN_SOLVER_MAX_ITERATIONS.
const EnvPrefix = "TRAITCHAIN"

// FileName is the config file searched for when no explicit path is given.
const FileName = "traitchain"

// ErrInvalidConfig indicates a config that decoded but fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the effective configuration of one run.
type Config struct {
	Solver      SolverConfig      `mapstructure:"solver" toml:"solver"`
	Puzzle      PuzzleConfig      `mapstructure:"puzzle" toml:"puzzle"`
	Catalog     CatalogConfig     `mapstructure:"catalog" toml:"catalog"`
	Translation TranslationConfig `mapstructure:"translation" toml:"translation"`
	Log         LogConfig         `mapstructure:"log" toml:"log"`
}

// SolverConfig tunes the deduction loop.
type SolverConfig struct {
	MaxIterations int  `mapstructure:"max_iterations" toml:"max_iterations" validate:"gte=1"`
	Lexicographic bool `mapstructure:"lexicographic" toml:"lexicographic"`
}

// PuzzleConfig locates the chain to solve.
type PuzzleConfig struct {
	Path       string `mapstructure:"path" toml:"path" validate:"required"`
	Difficulty string `mapstructure:"difficulty" toml:"difficulty" validate:"required"`
}

// CatalogConfig locates the crew file.
type CatalogConfig struct {
	Path string `mapstructure:"path" toml:"path" validate:"required"`
}

// TranslationConfig locates the optional trait display-name file.
type TranslationConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// LogConfig selects the log encoder and level.
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json"`
	Level string `mapstructure:"level" toml:"level" validate:"oneof=debug info warn error"`
}

// New returns a Viper instance with defaults, environment binding and, if
// found, the config file. An explicit path must exist; the implicit search
// in "." and $HOME/.config/traitchain tolerates a missing file.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}

		return v, nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", FileName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "config: read")
		}
	}

	return v, nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "%v", err)
	}

	return &cfg, nil
}

// Encode writes cfg as TOML, the format traitchain.toml is read in.
func Encode(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return errors.Wrap(err, "config: encode")
	}

	return nil
}
