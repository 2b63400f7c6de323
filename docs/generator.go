package docs

import (
	"context"
	"log"

	"github.com/pkg/errors"
	"go.elastic.co/apm"

	"github.com/titpetric/dbdocs/example"
	"github.com/titpetric/dbdocs/model"
	"github.com/titpetric/dbdocs/schema"
)

// ErrNoTables is returned when the schema has no tables
var ErrNoTables = errors.New("no tables found")

// Generator produces the documentation for a database schema
type Generator struct {
	reader   ColumnReader
	rows     RowFetcher
	models   *model.Registry
	defaults schema.Defaults
}

// NewGenerator creates a *Generator
func NewGenerator(reader ColumnReader, rows RowFetcher, models *model.Registry, defaults schema.Defaults) *Generator {
	if models == nil {
		models = model.NewRegistry()
	}
	if defaults == nil {
		defaults = schema.NewDefaults()
	}
	return &Generator{
		reader:   reader,
		rows:     rows,
		models:   models,
		defaults: defaults,
	}
}

// Generate returns the Markdown document for database
func (g *Generator) Generate(ctx context.Context, database string) ([]byte, error) {
	reports, err := g.Reports(ctx, database)
	if err != nil {
		return nil, err
	}
	return Render(database, reports), nil
}

// Reports reads the schema and builds a report for every table
func (g *Generator) Reports(ctx context.Context, database string) ([]*TableReport, error) {
	columns, err := g.reader.Columns(ctx, database)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, errors.Wrapf(ErrNoTables, "schema %s", database)
	}

	comments, err := g.reader.Comments(ctx, database)
	if err != nil {
		log.Println("warning: table comments not available:", err)
	}

	tables := schema.Group(columns, g.defaults)
	reports := make([]*TableReport, 0, len(tables))
	for idx, table := range tables {
		log.Printf("Processing table %d of %d: %s", idx+1, len(tables), table.Name)
		table.Comment = comments[table.Name]
		reports = append(reports, g.report(ctx, table))
	}
	return reports, nil
}

func (g *Generator) report(ctx context.Context, table *schema.Table) *TableReport {
	span, ctx := apm.StartSpan(ctx, "table "+table.Name, "app")
	defer span.End()

	report := &TableReport{
		Table: table,
		Model: g.models.Resolve(table.Name),
	}

	row, err := g.rows.Fetch(ctx, table.Name, table.Columns)
	if err != nil {
		log.Printf("warning: using mock example for %s: %s", table.Name, err)
		row = nil
	}
	if row == nil {
		row = example.Mock(table.Columns)
	}

	report.Example, err = example.Encode(row)
	if err != nil {
		log.Printf("warning: example for %s: %s", table.Name, err)
	}
	return report
}
