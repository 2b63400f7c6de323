package model

import (
	"github.com/pkg/errors"
)

// RelationKind names the relation type between two models
type RelationKind string

// Relation kinds known to the registry
const (
	HasOne         RelationKind = "HasOne"
	HasMany        RelationKind = "HasMany"
	BelongsTo      RelationKind = "BelongsTo"
	BelongsToMany  RelationKind = "BelongsToMany"
	HasOneThrough  RelationKind = "HasOneThrough"
	HasManyThrough RelationKind = "HasManyThrough"
	MorphOne       RelationKind = "MorphOne"
	MorphMany      RelationKind = "MorphMany"
	MorphTo        RelationKind = "MorphTo"
	MorphToMany    RelationKind = "MorphToMany"
	MorphedByMany  RelationKind = "MorphedByMany"
)

var relationKinds = map[RelationKind]bool{
	HasOne:         true,
	HasMany:        true,
	BelongsTo:      true,
	BelongsToMany:  true,
	HasOneThrough:  true,
	HasManyThrough: true,
	MorphOne:       true,
	MorphMany:      true,
	MorphTo:        true,
	MorphToMany:    true,
	MorphedByMany:  true,
}

// Valid reports if k is a known relation kind
func (k RelationKind) Valid() bool {
	return relationKinds[k]
}

type (
	// Metadata holds the declared attribute lists of a model
	Metadata struct {
		Fillable []string          `yaml:"fillable"`
		Casts    map[string]string `yaml:"casts"`
		Hidden   []string          `yaml:"hidden"`
	}

	// Relation is a declared relationship accessor on a model
	Relation struct {
		Method  string       `yaml:"method"`
		Kind    RelationKind `yaml:"kind"`
		Related string       `yaml:"related"`
	}

	// Descriptor is everything the registry knows about a model
	Descriptor struct {
		// Name is the fully qualified model identifier, e.g. models.User
		Name  string
		Table string

		Metadata  Metadata
		Relations []Relation
	}
)

// Validate checks relation declarations
func (d *Descriptor) Validate() error {
	if d.Table == "" {
		return errors.Errorf("model %s has no table name", d.Name)
	}
	for _, relation := range d.Relations {
		if relation.Method == "" {
			return errors.Errorf("model %s declares a relation without a method name", d.Name)
		}
		if !relation.Kind.Valid() {
			return errors.Errorf("model %s: unknown relation kind %q for %s()", d.Name, relation.Kind, relation.Method)
		}
		if relation.Related == "" {
			return errors.Errorf("model %s: relation %s() has no related model", d.Name, relation.Method)
		}
	}
	return nil
}
