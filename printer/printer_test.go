package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/engine"
	"github.com/typesig/apisearch/types"
)

func sampleResult(distance int) engine.Result {
	listOfA := types.NewGeneric(
		types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName("list"), 0)),
		types.NewVariable(types.TargetSource, types.TypeVariable{Name: "a"}),
	)
	return engine.Result{
		AssemblyName: "Core",
		Distance:     distance,
		Api: api.Api{
			Name: types.NewDisplayName("length", "List"),
			Signature: api.Signature{
				Kind: api.ModuleFunctionSignature,
				Function: types.Member{
					Name:            "length",
					Parameters:      types.ParameterGroups{{{Type: listOfA}}},
					ReturnParameter: types.Parameter{Type: types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName("int"), 0))},
				},
			},
		},
	}
}

func TestPlainPrintsOneLinePerResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Plain{Out: &buf}.Print([]engine.Result{sampleResult(0), sampleResult(2)}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "List.length")
	require.Contains(t, lines[0], "Core")
}

func TestStyledPrintsWithoutError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewStyled(&buf).Print([]engine.Result{sampleResult(0)}))
	require.NotEmpty(t, buf.String())
}

func TestBandOfClassifiesDistance(t *testing.T) {
	require.Equal(t, exactBand, bandOf(sampleResult(0)))
	require.Equal(t, nearBand, bandOf(sampleResult(3)))
	require.Equal(t, looseBand, bandOf(sampleResult(4)))
}
