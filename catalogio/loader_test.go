package catalogio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
	"assembly": "Core",
	"types": [
		{
			"name": "List.t",
			"type_kind": "union",
			"accessibility": "public",
			"generic_parameters": ["a"]
		}
	],
	"apis": [
		{
			"name": "List.length",
			"signature": {
				"kind": "module_function",
				"function": {
					"name": "length",
					"parameters": [[{"type": {"kind": "generic", "ctor": {"kind": "id", "identity": {"name": "List.t", "arity": 1}}, "elements": [{"kind": "var", "source": "target", "var_name": "a"}]}}]],
					"return": {"type": {"kind": "id", "identity": {"name": "int", "arity": 0}}}
				}
			}
		}
	]
}`

func TestLoadReaderResolvesNamesOutermostFirstToInnermostFirst(t *testing.T) {
	dict, err := NewLoader().LoadReader(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	require.Equal(t, "Core", dict.AssemblyName)
	require.Len(t, dict.Apis, 1)

	api := dict.Apis[0]
	require.Equal(t, "List.length", api.Name.String())
	require.Equal(t, "length", api.Signature.Function.Name)

	td, ok := dict.FindTypeDefinition(dict.TypeDefinitions[0].Name, 1)
	require.True(t, ok)
	require.Equal(t, "List.t", td.Name.String())
}

func TestLoadReaderRejectsUnknownFields(t *testing.T) {
	_, err := NewLoader().LoadReader(strings.NewReader(`{"assembly":"Core","apis":[],"bogus":true}`))
	require.Error(t, err)
}

func TestLoadReaderRejectsUnknownSignatureKind(t *testing.T) {
	bad := `{"assembly":"Core","apis":[{"name":"x","signature":{"kind":"not_a_kind"}}]}`
	_, err := NewLoader().LoadReader(strings.NewReader(bad))
	require.Error(t, err)
}

func TestLoadReaderRejectsMalformedLowType(t *testing.T) {
	bad := `{"assembly":"Core","apis":[{"name":"x","signature":{"kind":"module_value","value_type":{"kind":"generic"}}}]}`
	_, err := NewLoader().LoadReader(strings.NewReader(bad))
	require.Error(t, err)
}

func TestLoadBytesMatchesLoadReader(t *testing.T) {
	viaReader, err := NewLoader().LoadReader(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	viaBytes, err := NewLoader().LoadBytes([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Equal(t, viaReader.AssemblyName, viaBytes.AssemblyName)
	require.Len(t, viaBytes.Apis, len(viaReader.Apis))
}

func TestLoadFileMissingPath(t *testing.T) {
	_, err := NewLoader().LoadFile("/nonexistent/catalog.json")
	require.Error(t, err)
}
