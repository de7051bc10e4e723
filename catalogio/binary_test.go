package catalogio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveCacheLoadCacheRoundTrips(t *testing.T) {
	dict, err := NewLoader().LoadReader(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.cache")
	require.NoError(t, SaveCache(dict, path))

	reloaded, err := LoadCache(path)
	require.NoError(t, err)
	require.Equal(t, dict.AssemblyName, reloaded.AssemblyName)
	require.Len(t, reloaded.Apis, len(dict.Apis))
	require.Equal(t, dict.Apis[0].Name.String(), reloaded.Apis[0].Name.String())
	require.Equal(t, dict.Apis[0].Signature.Function.Name, reloaded.Apis[0].Signature.Function.Name)
	require.Len(t, reloaded.TypeDefinitions, len(dict.TypeDefinitions))
	require.Equal(t, dict.TypeDefinitions[0].Name.String(), reloaded.TypeDefinitions[0].Name.String())
}

func TestLoadCacheRejectsWrongMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-cache")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a cache"), 0644))
	_, err := LoadCache(path)
	require.Error(t, err)
}

func TestLoadCacheMissingPath(t *testing.T) {
	_, err := LoadCache("/nonexistent/catalog.cache")
	require.Error(t, err)
}
