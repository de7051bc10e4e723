package prefilter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/types"
)

func doc(text string) *string { return &text }

func sampleDictionaries() []*api.Dictionary {
	length := api.Api{
		Name:     types.NewDisplayName("length", "List"),
		Document: doc("Returns the length of a list."),
	}
	map_ := api.Api{
		Name:     types.NewDisplayName("map", "List"),
		Document: doc("Applies a function to every element."),
	}
	return []*api.Dictionary{api.NewDictionary("Core", []api.Api{length, map_}, nil, nil)}
}

func TestFilterNarrowsToMatchingEntries(t *testing.T) {
	idx, err := Build(sampleDictionaries())
	require.NoError(t, err)

	filtered, err := idx.Filter("length")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Len(t, filtered[0].Apis, 1)
	require.Equal(t, "List.length", filtered[0].Apis[0].Name.String())
	require.Equal(t, "Core", filtered[0].AssemblyName)
}

func TestFilterEmptyTextReturnsEverything(t *testing.T) {
	dicts := sampleDictionaries()
	idx, err := Build(dicts)
	require.NoError(t, err)

	filtered, err := idx.Filter("   ")
	require.NoError(t, err)
	require.Equal(t, dicts, filtered)
}

func TestBuildOnEmptyDictionariesIsUsable(t *testing.T) {
	idx, err := Build(nil)
	require.NoError(t, err)
	filtered, err := idx.Filter("anything")
	require.NoError(t, err)
	require.Empty(t, filtered)
}
