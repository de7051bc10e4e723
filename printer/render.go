package printer

import (
	"fmt"
	"strings"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/engine"
)

// SignatureText renders the type-structural part of an Api's signature
// the way a human reads it: "name : type". Variants with no single
// LowType to show (module/type definitions, extensions) fall back to a
// short descriptive label.
func SignatureText(a api.Api) string {
	name := a.Name.String()
	sig := a.Signature
	switch sig.Kind {
	case api.ModuleValueSignature:
		return fmt.Sprintf("%s : %s", name, sig.ValueType.String())
	case api.ModuleFunctionSignature:
		return fmt.Sprintf("%s : %s", name, sig.Function.SignatureLowType().String())
	case api.ActivePatternSignature:
		return fmt.Sprintf("(|%s|) : %s", name, sig.Function.SignatureLowType().String())
	case api.InstanceMemberSignature:
		return fmt.Sprintf("%s.%s : %s", sig.DeclaringType.String(), name, sig.Member.SignatureLowType().String())
	case api.StaticMemberSignature:
		return fmt.Sprintf("%s.%s : %s (static)", sig.DeclaringType.String(), name, sig.Member.SignatureLowType().String())
	case api.ConstructorSignature:
		return fmt.Sprintf("new %s : %s", sig.DeclaringType.String(), sig.Member.SignatureLowType().String())
	case api.ModuleDefinitionSignature:
		return fmt.Sprintf("module %s", sig.ModuleName.String())
	case api.FullTypeDefinitionSignature:
		return fmt.Sprintf("type %s", sig.TypeDefinition.Name.String())
	case api.TypeAbbreviationSignature:
		return fmt.Sprintf("type %s = %s", sig.TypeAbbreviation.Name.String(), sig.TypeAbbreviation.Original.String())
	case api.TypeExtensionSignature:
		return fmt.Sprintf("%s.%s : %s (extension)", sig.ExistingType.String(), name, sig.Member.SignatureLowType().String())
	case api.ExtensionMemberSignature:
		return fmt.Sprintf("%s : %s (extension member)", name, sig.Member.SignatureLowType().String())
	case api.UnionCaseSignature:
		fields := make([]string, len(sig.UnionCaseFields))
		for i, f := range sig.UnionCaseFields {
			fields[i] = f.Type.String()
		}
		if len(fields) == 0 {
			return fmt.Sprintf("%s : %s", name, sig.DeclaringUnionType.String())
		}
		return fmt.Sprintf("%s of %s : %s", name, strings.Join(fields, " * "), sig.DeclaringUnionType.String())
	case api.ComputationExpressionBuilderSignature:
		return fmt.Sprintf("%s : %s (computation expression builder)", name, sig.Builder.BuilderType.String())
	}
	return name
}

// distanceBand classifies a Result's distance into the three bands the
// Styled printer colors by: exact (0), near (within a small budget),
// loose (everything else).
type distanceBand int

const (
	exactBand distanceBand = iota
	nearBand
	looseBand
)

const nearBandMax = 3

func bandOf(r engine.Result) distanceBand {
	switch {
	case r.Distance == 0:
		return exactBand
	case r.Distance <= nearBandMax:
		return nearBand
	default:
		return looseBand
	}
}
