package main

import (
	"fmt"
	"strings"

	"github.com/scottcagno/collections/pkg/hashkey"
	"github.com/scottcagno/collections/pkg/hashmap/openaddr"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the shell settings. Every field can be set through the
// environment (HASHTABLE_CAPACITY and so on) or an optional config file.
type Config struct {
	Capacity   int     `mapstructure:"capacity"`
	LoadFactor float64 `mapstructure:"load_factor"`
	Hash       string  `mapstructure:"hash"`
	LogLevel   string  `mapstructure:"log_level"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("hashtable")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("capacity", openaddr.DefaultCapacity)
	v.SetDefault("load_factor", openaddr.DefaultLoadFactor)
	v.SetDefault("hash", "multiplicative")
	v.SetDefault("log_level", "info")
	return v
}

// loadConfig parses args, reads the config file if one was given and
// returns the merged settings
func loadConfig(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("hashtable", pflag.ContinueOnError)
	file := fs.String("config", "", "path to a config file (yaml, toml or json)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	v := newViper()
	if *file != "" {
		v.SetConfigFile(*file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %q: %w", *file, err)
		}
	}
	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if _, ok := hashkey.Lookup(conf.Hash); !ok {
		return nil, fmt.Errorf("unknown hash function %q", conf.Hash)
	}
	return conf, nil
}
