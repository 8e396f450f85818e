// Package config loads luadoc settings from an optional .luadoc.yaml and
// LUADOC_* environment variables using Viper.
//
// Every key has a default equal to the built-in behavior, so running without
// a config file changes nothing.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/agentflare-ai/luadoc/internal/libgen"
	"github.com/agentflare-ai/luadoc/internal/scan"
)

// Config holds the candidate selection and output settings.
type Config struct {
	Pattern        string   `mapstructure:"pattern"`
	ReservedPrefix string   `mapstructure:"reserved_prefix"`
	DocReserved    []string `mapstructure:"doc_reserved"`
	LibReserved    []string `mapstructure:"lib_reserved"`
	LibFile        string   `mapstructure:"lib_file"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

// DocScan is the candidate selection for doc comment injection.
func (c *Config) DocScan() scan.Config {
	return scan.Config{Pattern: c.Pattern, Reserved: c.DocReserved, ReservedPrefix: c.ReservedPrefix}
}

// LibScan is the candidate selection for lib.lua generation.
func (c *Config) LibScan() scan.Config {
	return scan.Config{Pattern: c.Pattern, Reserved: c.LibReserved, ReservedPrefix: c.ReservedPrefix}
}

func setDefaults(v *viper.Viper) {
	doc, lib := scan.DocComments(), scan.Library()
	v.SetDefault("pattern", doc.Pattern)
	v.SetDefault("reserved_prefix", doc.ReservedPrefix)
	v.SetDefault("doc_reserved", doc.Reserved)
	v.SetDefault("lib_reserved", lib.Reserved)
	v.SetDefault("lib_file", libgen.DefaultFile)
}

// Load reads configuration. An explicit path must exist; otherwise
// .luadoc.yaml in dir is used when present.
func Load(fs afero.Fs, path, dir string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)
	v.SetEnvPrefix("LUADOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir == "" {
			dir = "."
		}
		v.AddConfigPath(dir)
		v.SetConfigName(".luadoc")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	return &cfg, nil
}
