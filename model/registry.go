package model

import (
	"fmt"
	"log"
)

// Skipped records a model candidate that was left out of the registry
type Skipped struct {
	// Source is the manifest file or Go type the candidate came from
	Source string
	Err    error
}

func (s Skipped) Error() string {
	return fmt.Sprintf("skipped model %s: %s", s.Source, s.Err)
}

// Registry maps table names to model descriptors
type Registry struct {
	tables  map[string]*Descriptor
	order   []*Descriptor
	skipped []Skipped
}

// NewRegistry creates an empty *Registry
func NewRegistry() *Registry {
	return &Registry{
		tables: make(map[string]*Descriptor),
	}
}

// Register adds a descriptor. The first model registered for a table
// wins; invalid and duplicate descriptors are recorded as skipped, see
// Skipped.
func (r *Registry) Register(source string, descriptor *Descriptor) {
	skip := func(err error) {
		r.skipped = append(r.skipped, Skipped{Source: source, Err: err})
	}
	if err := descriptor.Validate(); err != nil {
		skip(err)
		return
	}
	if existing, ok := r.tables[descriptor.Table]; ok {
		skip(fmt.Errorf("table %s already belongs to %s", descriptor.Table, existing.Name))
		return
	}
	r.tables[descriptor.Table] = descriptor
	r.order = append(r.order, descriptor)
}

// Resolve returns the model registered for table, or nil
func (r *Registry) Resolve(table string) *Descriptor {
	return r.tables[table]
}

// Models returns the registered descriptors in registration order
func (r *Registry) Models() []*Descriptor {
	return r.order
}

// Skipped returns the candidates which couldn't be registered
func (r *Registry) Skipped() []Skipped {
	return r.skipped
}

// LogSkipped prints a warning for every skipped candidate
func (r *Registry) LogSkipped() {
	for _, s := range r.skipped {
		log.Println("warning:", s.Error())
	}
}
