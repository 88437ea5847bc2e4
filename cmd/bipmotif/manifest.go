package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// dataset holds everything needed to load one named edge list.
type dataset struct {
	Path      string `yaml:"path"`
	Comment   string `yaml:"comment"`
	Delimiter string `yaml:"delimiter"`
	Swap      bool   `yaml:"swap"`
}

// manifest maps dataset names to their load settings, e.g.:
//
//	datasets:
//	  music:
//	    path: data/music_2009.tsv
//	    delimiter: "\t"
//	  videogames:
//	    path: data/vg_97-06.txt
//	    swap: true
type manifest struct {
	Datasets map[string]dataset `yaml:"datasets"`
}

// loadManifest reads and parses a YAML dataset manifest.
func loadManifest(path string) (*manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// resolve returns the named dataset, its path resolved against the
// manifest's own directory.
func (m *manifest) resolve(manifestPath, name string) (dataset, error) {
	ds, ok := m.Datasets[name]
	if !ok {
		names := make([]string, 0, len(m.Datasets))
		for n := range m.Datasets {
			names = append(names, n)
		}
		sort.Strings(names)
		return dataset{}, fmt.Errorf("manifest has no dataset %q (have: %s)",
			name, strings.Join(names, ", "))
	}
	if ds.Path != "" && !filepath.IsAbs(ds.Path) {
		ds.Path = filepath.Join(filepath.Dir(manifestPath), ds.Path)
	}
	return ds, nil
}
