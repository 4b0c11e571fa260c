package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// SpecFile lists the enumerations of one package, as an alternative to
// passing a single type on the command line.
//
//	version: "1"
//	output: enummap_gen.go
//	enums:
//	  - type: Animal
//	    keys: color sound
//	  - type: Terrain
//	    keys: [ground, water]
//	    multiple_from: true
type SpecFile struct {
	Version string     `yaml:"version"`
	Output  string     `yaml:"output,omitempty"`
	Enums   []EnumSpec `yaml:"enums"`
}

// KeyList is a key specification as written in a spec file or flag: either a
// single string of space or comma separated keys, or a list.
type KeyList []string

// SplitKeys splits a single-string key specification into tokens without
// validating them. The result is never nil: an explicitly empty
// specification must not fall back to the type's directive.
func SplitKeys(s string) KeyList {
	keys := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if keys == nil {
		return KeyList{}
	}
	return keys
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *KeyList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*k = SplitKeys(value.Value)
		return nil
	case yaml.SequenceNode:
		list := []string{}
		if err := value.Decode(&list); err != nil {
			return err
		}
		*k = list
		return nil
	default:
		return errors.New("expected string or list of strings for keys")
	}
}

// LoadSpecFile loads and parses a YAML spec file from the given path.
func LoadSpecFile(path string) (*SpecFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}
	return ParseSpec(data)
}

// ParseSpec parses YAML data into a SpecFile. Unknown fields are rejected.
func ParseSpec(data []byte) (*SpecFile, error) {
	var sf SpecFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse spec YAML: %w", err)
	}
	if sf.Version == "" {
		sf.Version = "1"
	}
	if sf.Version != "1" {
		return nil, fmt.Errorf("unsupported spec version %q", sf.Version)
	}
	return &sf, nil
}
