package catalogio

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/types"
)

// Loader reads a catalog description from JSON and resolves it into an
// *api.Dictionary, the population step a search runs against.
type Loader struct {
	// Logger receives diagnostics; defaults to slog.Default() the way
	// package engine does.
	Logger *slog.Logger
}

// NewLoader builds a Loader with the default logger.
func NewLoader() *Loader {
	return &Loader{Logger: slog.Default()}
}

// LoadFile reads and resolves the catalog at path.
func (l *Loader) LoadFile(path string) (*api.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalogio: open %s: %w", path, err)
	}
	defer f.Close()
	return l.LoadReader(f)
}

// LoadReader reads and resolves a catalog from r.
func (l *Loader) LoadReader(r io.Reader) (*api.Dictionary, error) {
	var dto CatalogDTO
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dto); err != nil {
		return nil, fmt.Errorf("catalogio: decode catalog: %w", err)
	}
	return l.resolve(dto)
}

// LoadBytes reads and resolves a catalog from an in-memory buffer
// rather than from a file.
func (l *Loader) LoadBytes(data []byte) (*api.Dictionary, error) {
	var dto CatalogDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("catalogio: decode catalog: %w", err)
	}
	return l.resolve(dto)
}

func (l *Loader) resolve(dto CatalogDTO) (*api.Dictionary, error) {
	if l.Logger == nil {
		l.Logger = slog.Default()
	}
	dict, err := dto.toDictionary()
	if err != nil {
		return nil, err
	}
	for _, item := range dict.Apis {
		for _, lt := range apiLowTypes(item) {
			if err := types.Validate(lt); err != nil {
				return nil, fmt.Errorf("catalogio: dictionary %q: %w", dict.AssemblyName, err)
			}
		}
	}
	l.Logger.Debug("apisearch/catalogio: loaded dictionary",
		"assembly", dict.AssemblyName, "apis", len(dict.Apis),
		"types", len(dict.TypeDefinitions), "abbreviations", len(dict.TypeAbbreviations))
	return dict, nil
}

// apiLowTypes mirrors engine.apiSignatureLowTypes: every LowType a
// signature variant might carry. Validating at load time means a
// malformed catalog is rejected before it ever reaches a search.
func apiLowTypes(a api.Api) []types.LowType {
	sig := a.Signature
	out := []types.LowType{
		sig.ValueType,
		sig.Function.SignatureLowType(),
		sig.DeclaringType,
		sig.Member.SignatureLowType(),
		sig.ExistingType,
		sig.DeclaringUnionType,
		sig.Builder.BuilderType,
	}
	for _, f := range sig.UnionCaseFields {
		out = append(out, f.Type)
	}
	out = append(out, sig.Builder.ComputationExpressionTypes...)
	return out
}
