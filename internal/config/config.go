// Package config resolves run settings from command-line flags, SUBSEQ_*
// environment variables, and an optional config file, in that order of
// precedence, using Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every setting name when reading the environment,
// e.g. SUBSEQ_QUIET or SUBSEQ_NO_COLOR.
const EnvPrefix = "SUBSEQ"

// Config is the resolved set of run settings.
type Config struct {
	// memory-map the input instead of reading through the file descriptor
	Mmap bool `mapstructure:"mmap"`

	// suppress the past-the-end warning
	Quiet bool `mapstructure:"quiet"`

	// never colour diagnostics
	NoColor bool `mapstructure:"no-color"`
}

// RegisterFlags adds the settings flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Bool("mmap", false, "memory-map the FASTA file instead of reading it")
	fs.BoolP("quiet", "q", false, "suppress the past-the-end warning")
	fs.Bool("no-color", false, "disable coloured diagnostics")
}

// Load binds fs into v, reads file when it is non-empty, and decodes the
// result.
func Load(v *viper.Viper, fs *pflag.FlagSet, file string) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
