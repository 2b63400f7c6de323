package schema

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Reader lists tables and columns from information_schema
type Reader struct {
	db *sqlx.DB
}

// NewReader creates a *Reader
func NewReader(db *sqlx.DB) *Reader {
	return &Reader{db: db}
}

// Columns returns every column of every table in schema, ordered by
// table name and ordinal position
func (r *Reader) Columns(ctx context.Context, schema string) ([]*Column, error) {
	columns := []*Column{}
	fields := strings.Join((*Column)(nil).Fields(), ", ")
	query := "select " + fields + " from information_schema.columns where table_schema=? order by table_name asc, ordinal_position asc"
	if err := r.db.SelectContext(ctx, &columns, query, schema); err != nil {
		return nil, errors.Wrapf(err, "listing columns for schema %s", schema)
	}
	return columns, nil
}

// Comments returns table comments keyed by table name. Tables without
// a comment are left out.
func (r *Reader) Comments(ctx context.Context, schema string) (map[string]string, error) {
	tables := []*Table{}
	fields := strings.Join((*Table)(nil).Fields(), ", ")
	query := "select " + fields + " from information_schema.tables where table_schema=? order by table_name asc"
	if err := r.db.SelectContext(ctx, &tables, query, schema); err != nil {
		return nil, errors.Wrapf(err, "listing tables for schema %s", schema)
	}

	result := make(map[string]string)
	for _, table := range tables {
		if table.Comment != "" {
			result[table.Name] = table.Comment
		}
	}
	return result, nil
}
