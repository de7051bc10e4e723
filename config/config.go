package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/typesig/apisearch/query"
)

// Config is the on-disk shape of query.Options plus the catalog paths
// cmd/apisearch needs to assemble a search. Field names are lowercase
// snake_case in TOML.
type Config struct {
	Catalogs []string `toml:"catalogs"`

	GreedyMatching        bool `toml:"greedy_matching"`
	RespectNameDifference bool `toml:"respect_name_difference"`
	IgnoreParameterStyle  bool `toml:"ignore_parameter_style"`
	IgnoreCase            bool `toml:"ignore_case"`
	SwapOrderDepth        int  `toml:"swap_order_depth"`
	ComplementDepth       int  `toml:"complement_depth"`
	Parallel              bool `toml:"parallel"`
	Secondary             bool `toml:"secondary_dialect"`
	Prefilter             bool `toml:"prefilter"`
}

// Default returns the Config backing query.DefaultOptions, with no
// catalogs configured.
func Default() Config {
	d := query.DefaultOptions()
	return Config{
		SwapOrderDepth:  d.SwapOrderDepth,
		ComplementDepth: d.ComplementDepth,
	}
}

// Load reads and parses a TOML config file at path. A missing file is
// not an error: Load returns Default() so a fresh install works
// without one.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("apisearch/config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("apisearch/config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML.
func Save(cfg Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("apisearch/config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("apisearch/config: write %s: %w", path, err)
	}
	return nil
}

// Options converts cfg to query.Options and clamps any out-of-range
// values rather than rejecting them.
func (c Config) Options() query.Options {
	opts := query.Options{
		GreedyMatching:        query.Toggle(c.GreedyMatching),
		RespectNameDifference: query.Toggle(c.RespectNameDifference),
		IgnoreParameterStyle:  query.Toggle(c.IgnoreParameterStyle),
		IgnoreCase:            query.Toggle(c.IgnoreCase),
		SwapOrderDepth:        c.SwapOrderDepth,
		ComplementDepth:       c.ComplementDepth,
		Parallel:              query.Toggle(c.Parallel),
		Prefilter:             query.Toggle(c.Prefilter),
	}
	if c.Secondary {
		opts.Mode = query.SecondaryMode
	}
	opts.Clamp()
	return opts
}
