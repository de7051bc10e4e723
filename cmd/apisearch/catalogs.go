package main

import (
	"fmt"
	"strings"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/catalogio"
	"github.com/typesig/apisearch/engine"
)

// loadCatalogs opens each path as a JSON catalog first; when that fails
// and the path ends in ".cache", it loads the path as a binary cache
// instead. Any other load failure is returned.
func loadCatalogs(paths []string) ([]*api.Dictionary, error) {
	dicts := make([]*api.Dictionary, 0, len(paths))
	loader := catalogio.NewLoader()
	for _, path := range paths {
		dict, err := loader.LoadFile(path)
		if err != nil {
			if strings.HasSuffix(path, ".cache") {
				dict, err = catalogio.LoadCache(path)
			}
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
		dicts = append(dicts, dict)
	}
	return dicts, nil
}

func strategyFor(secondary bool) engine.Strategy {
	if secondary {
		return engine.SecondaryStrategy{}
	}
	return engine.PrimaryStrategy{}
}
