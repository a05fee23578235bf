package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// Format is the encoding of a dataset file.
type Format string

const (
	// FormatJSON is a .json file.
	FormatJSON Format = "json"
	// FormatYAML is a .yaml or .yml file.
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported dataset extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Validate checks a dataset document against the embedded JSON schema.
func Validate(data []byte, format Format) error {
	var document gojsonschema.JSONLoader
	switch format {
	case FormatJSON:
		document = gojsonschema.NewBytesLoader(data)
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("could not parse YAML: %w", err)
		}
		document = gojsonschema.NewGoLoader(doc)
	default:
		return fmt.Errorf("unknown dataset format %q", format)
	}

	result, err := gojsonschema.Validate(schemaLoader, document)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("dataset validation failed: %s", strings.Join(errs, ", "))
}

// Parse validates and decodes a dataset document.
func Parse(data []byte, format Format) (Dataset, error) {
	if err := Validate(data, format); err != nil {
		return Dataset{}, err
	}

	var ds Dataset
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &ds); err != nil {
			return Dataset{}, fmt.Errorf("could not decode JSON dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return Dataset{}, fmt.Errorf("could not decode YAML dataset: %w", err)
		}
	}
	ds.assignKeys()
	return ds, nil
}

// LoadFile reads a single dataset file.
func LoadFile(path string) (Dataset, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Dataset{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("could not read dataset %q: %w", path, err)
	}
	ds, err := Parse(data, format)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Expand resolves a doublestar pattern (e.g. "data/**/*.yaml") into sorted
// file paths. A pattern without glob metacharacters resolves to itself.
func Expand(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad dataset pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no dataset files match %q", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// Load returns the built-in dataset when pattern is empty; otherwise it loads
// and merges every matching file in path order.
func Load(pattern string) (Dataset, error) {
	if strings.TrimSpace(pattern) == "" {
		return Builtin(), nil
	}

	paths, err := Expand(pattern)
	if err != nil {
		return Dataset{}, err
	}

	var merged Dataset
	for _, p := range paths {
		ds, err := LoadFile(p)
		if err != nil {
			return Dataset{}, err
		}
		merged = merged.Merge(ds)
	}
	if len(merged.Charts()) == 0 {
		return Dataset{}, fmt.Errorf("%q: %w", pattern, ErrEmptyDataset)
	}
	return merged.withDefaults(), nil
}

// assignKeys derives missing section and chart keys from their titles.
func (d *Dataset) assignKeys() {
	for i := range d.Sections {
		s := &d.Sections[i]
		if s.Key == "" {
			s.Key = slug(s.Heading)
		}
		for j := range s.Charts {
			if s.Charts[j].Key == "" {
				s.Charts[j].Key = slug(s.Charts[j].Title)
			}
		}
	}
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
