package prefilter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/typesig/apisearch/api"
)

// document is the bleve-indexed shape of one catalog entry: its
// dotted display name and documentation text, tokenized by bleve's
// default analyzer.
type document struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Index is an in-memory full-text index over one or more dictionaries'
// API entries, keyed "<dict index>:<api index>" so a hit maps straight
// back to its owning dictionary and entry.
type Index struct {
	bi    bleve.Index
	dicts []*api.Dictionary
}

// Build indexes every Api's DisplayName and Document text across
// dicts. An empty dicts slice yields a usable, always-empty Index
// rather than an error.
func Build(dicts []*api.Dictionary) (*Index, error) {
	mapping := bleve.NewIndexMapping()
	bi, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("apisearch/prefilter: new index: %w", err)
	}
	idx := &Index{bi: bi, dicts: dicts}
	for di, d := range dicts {
		for ai, a := range d.Apis {
			doc := document{Name: a.Name.String()}
			if a.Document != nil {
				doc.Text = *a.Document
			}
			id := entryID(di, ai)
			if err := bi.Index(id, doc); err != nil {
				return nil, fmt.Errorf("apisearch/prefilter: index %s: %w", id, err)
			}
		}
	}
	return idx, nil
}

func entryID(dictIndex, apiIndex int) string {
	return strconv.Itoa(dictIndex) + ":" + strconv.Itoa(apiIndex)
}

// Filter runs text against the index and returns a reduced copy of the
// original dictionaries containing only the entries bleve considers a
// match for text, preserving each dictionary's AssemblyName,
// TypeDefinitions, and TypeAbbreviations unchanged (those are needed
// for lookups the structural matcher performs regardless of which
// entries passed the text filter). An empty or all-whitespace text
// disables filtering: Filter returns the original dictionaries as-is,
// since a prefilter must never narrow a query that carries no text to
// filter on.
func (idx *Index) Filter(text string) ([]*api.Dictionary, error) {
	if strings.TrimSpace(text) == "" {
		return idx.dicts, nil
	}
	q := query.NewMatchQuery(text)
	req := bleve.NewSearchRequest(q)
	req.Size = len(idx.dicts) * maxEntriesPerDict(idx.dicts)
	if req.Size == 0 {
		req.Size = 1
	}
	result, err := idx.bi.Search(req)
	if err != nil {
		return nil, fmt.Errorf("apisearch/prefilter: search: %w", err)
	}

	hits := make(map[int]map[int]bool, len(idx.dicts))
	for _, hit := range result.Hits {
		di, ai, err := parseEntryID(hit.ID)
		if err != nil {
			return nil, err
		}
		if hits[di] == nil {
			hits[di] = make(map[int]bool)
		}
		hits[di][ai] = true
	}

	out := make([]*api.Dictionary, len(idx.dicts))
	for di, d := range idx.dicts {
		var apis []api.Api
		for ai, a := range d.Apis {
			if hits[di][ai] {
				apis = append(apis, a)
			}
		}
		out[di] = api.NewDictionary(d.AssemblyName, apis, d.TypeDefinitions, d.TypeAbbreviations)
	}
	return out, nil
}

func maxEntriesPerDict(dicts []*api.Dictionary) int {
	max := 0
	for _, d := range dicts {
		if len(d.Apis) > max {
			max = len(d.Apis)
		}
	}
	return max
}

func parseEntryID(id string) (dictIndex, apiIndex int, err error) {
	parts := strings.SplitN(id, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("apisearch/prefilter: malformed entry id %q", id)
	}
	dictIndex, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("apisearch/prefilter: malformed entry id %q: %w", id, err)
	}
	apiIndex, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("apisearch/prefilter: malformed entry id %q: %w", id, err)
	}
	return dictIndex, apiIndex, nil
}
