package docs

import (
	"context"

	"github.com/titpetric/dbdocs/example"
	"github.com/titpetric/dbdocs/model"
	"github.com/titpetric/dbdocs/schema"
)

type (
	// ColumnReader lists the columns and table comments of a schema
	ColumnReader interface {
		Columns(ctx context.Context, schema string) ([]*schema.Column, error)
		Comments(ctx context.Context, schema string) (map[string]string, error)
	}

	// RowFetcher returns the first row of a table, or nil if it's empty
	RowFetcher interface {
		Fetch(ctx context.Context, table string, columns []*schema.Column) (*example.Row, error)
	}

	// TableReport is everything rendered for one table
	TableReport struct {
		Table *schema.Table

		// Model is nil when no model uses the table
		Model *model.Descriptor

		// Example is the encoded JSON example row
		Example string
	}
)
