package catalogio

import (
	"fmt"
	"os"

	"github.com/typesig/apisearch/api"
)

// cacheMagic tags a binary cache file so LoadCache can reject a file
// from an incompatible format instead of misparsing it.
const cacheMagic = "apisearchcache1"

// SaveCache mus-marshals dict's JSON-DTO form to path, for a fast-path
// reload that skips JSON parsing; LoadCache still runs Loader.resolve on
// the decoded DTO. The cache is a pure encoding of the same catalogDTO
// the JSON loader builds, and its byte layout follows the struct field
// order generated in catalog_mus.gen.go. The magic prefix is fixed and
// carries no layout version, so a cache written by a build with a
// different DTO shape is not recognized as such: decoding it may fail
// or may return different data.
func SaveCache(dict *api.Dictionary, path string) error {
	dto := fromDictionary(dict)
	size := len(cacheMagic) + CatalogDTOMUS.Size(dto)
	bs := make([]byte, size)
	n := copy(bs, cacheMagic)
	CatalogDTOMUS.Marshal(dto, bs[n:])
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return fmt.Errorf("catalogio: write cache %s: %w", path, err)
	}
	return nil
}

// LoadCache reads a binary cache written by SaveCache. It applies the
// same load-time validation as Loader.LoadFile: a malformed cache
// aborts with an error rather than handing back a partially resolved
// Dictionary.
func LoadCache(path string) (*api.Dictionary, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalogio: read cache %s: %w", path, err)
	}
	if len(bs) < len(cacheMagic) || string(bs[:len(cacheMagic)]) != cacheMagic {
		return nil, fmt.Errorf("catalogio: %s is not an apisearch catalog cache", path)
	}
	dto, _, err := CatalogDTOMUS.Unmarshal(bs[len(cacheMagic):])
	if err != nil {
		return nil, fmt.Errorf("catalogio: decode cache %s: %w", path, err)
	}
	l := NewLoader()
	return l.resolve(dto)
}

// fromDictionary is the write-side counterpart of catalogDTO.toDictionary,
// re-flattening an already-resolved Dictionary back into JSON-DTO shape so
// SaveCache/LoadCache round-trip through the same wire format the JSON
// loader produces. Names are re-dotted outermost-first, the inverse of
// resolveName.
func fromDictionary(dict *api.Dictionary) CatalogDTO {
	dto := CatalogDTO{Assembly: dict.AssemblyName}
	for _, td := range dict.TypeDefinitions {
		dto.Types = append(dto.Types, typeDefToDTO(td))
	}
	for _, ta := range dict.TypeAbbreviations {
		dto.Abbreviations = append(dto.Abbreviations, abbrevToDTO(ta))
	}
	for _, a := range dict.Apis {
		dto.Apis = append(dto.Apis, apiToDTO(a))
	}
	return dto
}
