package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typesig/apisearch/query"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Config{
		Catalogs:        []string{"core.json", "fsharp.json"},
		GreedyMatching:  true,
		SwapOrderDepth:  5,
		ComplementDepth: 1,
		Prefilter:       true,
	}
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestOptionsClampsNegativeDepths(t *testing.T) {
	cfg := Config{SwapOrderDepth: -3, ComplementDepth: -1}
	opts := cfg.Options()
	require.Equal(t, 0, opts.SwapOrderDepth)
	require.Equal(t, 0, opts.ComplementDepth)
}

func TestOptionsSelectsSecondaryMode(t *testing.T) {
	cfg := Config{Secondary: true}
	require.Equal(t, query.SecondaryMode, cfg.Options().Mode)
}
