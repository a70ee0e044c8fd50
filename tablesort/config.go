package tablesort

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML layout of a sort specification file:
//
//	tables:
//	  - title: MX Records
//	    keys:
//	      - field: Preference
//	        compare: int
//	      - field: Mail Server
//	        compare: domain
type specFile struct {
	Tables []tableConfig `yaml:"tables"`
}

type tableConfig struct {
	Title string      `yaml:"title"`
	Keys  []keyConfig `yaml:"keys"`
}

type keyConfig struct {
	Field   string `yaml:"field"`
	Compare string `yaml:"compare"`
}

// LoadSpecsFile reads sort specifications from a YAML file.
func LoadSpecsFile(filename string) (SpecSet, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read sort specifications from file %s: %w", filename, err)
	}
	set, err := LoadSpecs(bytes.NewReader(contents))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return set, nil
}

//
// LoadSpecs decodes sort specifications from YAML. Comparators are named
// as in LookupComparator. Unknown fields, unknown comparators, tables
// without keys and repeated titles are errors.
//
func LoadSpecs(r io.Reader) (SpecSet, error) {

	var config specFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal sort specifications: %w", err)
	}

	set := make(SpecSet, len(config.Tables))
	for i, t := range config.Tables {
		if t.Title == "" {
			return nil, fmt.Errorf("table %d: missing title", i)
		}
		if _, dup := set[t.Title]; dup {
			return nil, fmt.Errorf("table %q: defined more than once", t.Title)
		}
		spec := Spec{Title: t.Title}
		for _, k := range t.Keys {
			if k.Field == "" {
				return nil, fmt.Errorf("table %q: key with no field", t.Title)
			}
			cmp, ok := LookupComparator(k.Compare)
			if !ok {
				return nil, fmt.Errorf("table %q: field %q: unknown comparator %q (want one of %s)",
					t.Title, k.Field, k.Compare, strings.Join(ComparatorNames(), ", "))
			}
			spec.Keys = append(spec.Keys, Key{Field: k.Field, Compare: cmp})
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("table %q: %w", t.Title, err)
		}
		set.Add(spec)
	}

	return set, nil
}
