package model

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Namespace qualifies model names loaded from manifests
const Namespace = "models"

// manifest is the on-disk form of a model definition
type manifest struct {
	Metadata `yaml:",inline"`

	Table     string     `yaml:"table"`
	Relations []Relation `yaml:"relations"`
}

// LoadDir registers a model for every *.yaml or *.yml manifest in dir,
// in file name order. A missing dir yields an empty registry. Files that
// fail to load are recorded as skipped.
func LoadDir(dir string) (*Registry, error) {
	registry := NewRegistry()

	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return registry, nil
		}
		return nil, errors.Wrapf(err, "reading model directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filename := entry.Name()
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".yaml", ".yml":
		default:
			continue
		}

		source := filepath.Join(dir, filename)
		descriptor, err := LoadFile(source)
		if err != nil {
			registry.skipped = append(registry.skipped, Skipped{Source: source, Err: err})
			continue
		}
		registry.Register(source, descriptor)
	}
	return registry, nil
}

// LoadFile reads a single model manifest. The model name is derived
// from the file name.
func LoadFile(filename string) (*Descriptor, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	m := manifest{}
	if err := yaml.Unmarshal(contents, &m); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}

	name := modelName(filepath.Base(filename))
	result := &Descriptor{
		Name:      qualify(Namespace, name),
		Table:     m.Table,
		Metadata:  m.Metadata,
		Relations: m.Relations,
	}
	if result.Table == "" {
		result.Table = TableName(name)
	}
	for k, relation := range result.Relations {
		result.Relations[k].Related = qualify(Namespace, relation.Related)
	}
	return result, nil
}
