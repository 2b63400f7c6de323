package example

import (
	"bytes"
	"encoding/json"
)

// Row is an example record which keeps its keys in column order
type Row struct {
	keys   []string
	values map[string]interface{}
}

// NewRow creates an empty *Row
func NewRow() *Row {
	return &Row{
		values: make(map[string]interface{}),
	}
}

// Set adds or replaces a value
func (r *Row) Set(key string, value interface{}) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key
func (r *Row) Get(key string) (interface{}, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Keys returns the row keys in insertion order
func (r *Row) Keys() []string {
	return r.keys
}

// Len returns the number of values
func (r *Row) Len() int {
	return len(r.keys)
}

// MarshalJSON encodes the row as an object with ordered keys
func (r *Row) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for idx, key := range r.keys {
		if idx > 0 {
			buf.WriteString(",")
		}
		if err := encodeValue(buf, key); err != nil {
			return nil, err
		}
		buf.WriteString(":")
		if err := encodeValue(buf, r.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, value interface{}) error {
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	// Encode terminates values with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
