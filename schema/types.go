package schema

import "database/sql"

// Table is a database table with its columns in ordinal order
type Table struct {
	Name    string `db:"TABLE_NAME"`
	Comment string `db:"TABLE_COMMENT"`

	// IsDefault marks framework infrastructure tables (jobs, cache, ...)
	IsDefault bool `db:"-"`

	Columns []*Column `db:"-"`
}

// Fields returns the information_schema.tables select list
func (*Table) Fields() []string {
	return []string{"TABLE_NAME", "TABLE_COMMENT"}
}

// Column describes a single physical column
type Column struct {
	Table    string         `db:"TABLE_NAME"`
	Name     string         `db:"COLUMN_NAME"`
	Type     string         `db:"COLUMN_TYPE"`
	Nullable string         `db:"IS_NULLABLE"`
	Key      string         `db:"COLUMN_KEY"`
	Default  sql.NullString `db:"COLUMN_DEFAULT"`
	Extra    string         `db:"EXTRA"`
	Comment  string         `db:"COLUMN_COMMENT"`
	Position int            `db:"ORDINAL_POSITION"`

	// Holds the clean data type
	DataType string `db:"DATA_TYPE"`
}

// Fields returns the information_schema.columns select list
func (*Column) Fields() []string {
	return []string{
		"TABLE_NAME",
		"COLUMN_NAME",
		"COLUMN_TYPE",
		"IS_NULLABLE",
		"COLUMN_KEY",
		"COLUMN_DEFAULT",
		"EXTRA",
		"COLUMN_COMMENT",
		"ORDINAL_POSITION",
		"DATA_TYPE",
	}
}

// DefaultValue returns the column default, or "NULL" if there is none
func (c *Column) DefaultValue() string {
	if c.Default.Valid {
		return c.Default.String
	}
	return "NULL"
}
