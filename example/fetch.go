package example

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/titpetric/dbdocs/schema"
)

// Fetch returns the first row of table, or nil when the table is empty.
// Columns supply the data types used to convert driver values.
func Fetch(ctx context.Context, db sqlx.QueryerContext, table string, columns []*schema.Column) (*Row, error) {
	dataTypes := make(map[string]string, len(columns))
	for _, column := range columns {
		dataTypes[column.Name] = column.DataType
	}

	rows, err := db.QueryxContext(ctx, "select * from "+quoteIdentifier(table)+" limit 1")
	if err != nil {
		return nil, errors.Wrapf(err, "querying example row from %s", table)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, errors.Wrapf(rows.Err(), "reading example row from %s", table)
	}

	names, err := rows.Columns()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	values, err := rows.SliceScan()
	if err != nil {
		return nil, errors.Wrapf(err, "scanning example row from %s", table)
	}

	row := NewRow()
	for idx, name := range names {
		dataType, ok := dataTypes[name]
		if !ok {
			dataType = columnTypeName(rows, idx)
		}
		row.Set(name, convert(values[idx], dataType))
	}
	return row, nil
}

func columnTypeName(rows *sqlx.Rows, idx int) string {
	types, err := rows.ColumnTypes()
	if err != nil || idx >= len(types) {
		return ""
	}
	return types[idx].DatabaseTypeName()
}

func quoteIdentifier(name string) string {
	return "`" + strings.Replace(name, "`", "``", -1) + "`"
}

// Fetcher reads example rows from a database handle
type Fetcher struct {
	db sqlx.QueryerContext
}

// NewFetcher creates a *Fetcher
func NewFetcher(db sqlx.QueryerContext) *Fetcher {
	return &Fetcher{db: db}
}

// Fetch returns the first row of table, see Fetch
func (f *Fetcher) Fetch(ctx context.Context, table string, columns []*schema.Column) (*Row, error) {
	return Fetch(ctx, f.db, table, columns)
}
