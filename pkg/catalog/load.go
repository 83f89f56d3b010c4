package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the default name of the catalog override file.
	FileName = "catalog.yaml"

	dirMode  = 0o700
	fileMode = 0o600
)

// File is the on-disk format of a catalog override. Entries replace builtin
// entries of the same name when loaded.
type File struct {
	Metaphors []*Metaphor         `yaml:"metaphors,omitempty"`
	Chains    map[string][]string `yaml:"chains,omitempty"`
	Emotions  []*Emotion          `yaml:"emotions,omitempty"`
}

// Load returns the builtin catalog with the override file at path applied.
// An empty path returns the builtin catalog unchanged.
func Load(path string) (*Catalog, error) {
	base := Builtin()

	path = strings.TrimSpace(path)
	if path == "" {
		return base, nil
	}

	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file: %s", path)
	}

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog file: %s", path)
	}

	override, err := New(f.Metaphors, f.Chains, f.Emotions)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid catalog file: %s", path)
	}

	return base.Merge(override), nil
}

// WriteDefault writes the builtin catalog to path as an editable starting
// point. Existing files are left untouched.
func WriteDefault(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("catalog file path required")
	}
	path = filepath.Clean(path)

	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "failed to check catalog file: %s", path)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return errors.Wrapf(err, "failed to create catalog dir: %s", dir)
		}
	}

	c := Builtin()
	f := &File{
		Metaphors: c.Metaphors(),
		Emotions:  c.Emotions(),
		Chains:    make(map[string][]string, len(c.chains)),
	}
	for name := range c.chains {
		f.Chains[name] = c.Chain(name)
	}

	b, err := yaml.Marshal(f)
	if err != nil {
		return errors.Wrap(err, "failed to marshal catalog")
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write catalog file: %s", path)
	}
	return nil
}
