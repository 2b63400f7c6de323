package model

import (
	"fmt"
	"path"
	"reflect"

	"github.com/pkg/errors"
)

type (
	// Tabler is implemented by models which declare their table name
	Tabler interface {
		TableName() string
	}

	// Describer is implemented by models which declare attribute metadata
	Describer interface {
		DescribeMetadata() Metadata
	}

	// Relater is implemented by models which declare relationships
	Relater interface {
		Relations() []Relation
	}
)

// FromModel builds a descriptor for a Go model value. The value only
// needs to be a struct (or pointer to one); Tabler, Describer and
// Relater are consulted when implemented.
func FromModel(value interface{}) (*Descriptor, error) {
	if value == nil {
		return nil, errors.New("nil model")
	}
	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.Name() == "" {
		return nil, errors.Errorf("model must be a named struct, got %s", t)
	}

	result := &Descriptor{
		Name: qualify(path.Base(t.PkgPath()), t.Name()),
	}
	if m, ok := value.(Tabler); ok {
		result.Table = m.TableName()
	}
	if result.Table == "" {
		result.Table = TableName(t.Name())
	}
	if m, ok := value.(Describer); ok {
		result.Metadata = m.DescribeMetadata()
	}
	if m, ok := value.(Relater); ok {
		result.Relations = m.Relations()
	}
	return result, nil
}

// RegisterModels adds Go models to the registry. Models which can't be
// described are recorded as skipped.
func (r *Registry) RegisterModels(models ...interface{}) {
	for _, value := range models {
		source := fmt.Sprintf("%T", value)
		descriptor, err := FromModel(value)
		if err != nil {
			r.skipped = append(r.skipped, Skipped{Source: source, Err: err})
			continue
		}
		r.Register(source, descriptor)
	}
}
