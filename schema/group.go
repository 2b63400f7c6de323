package schema

import (
	"sort"
	"strings"
)

// DefaultTables are the infrastructure tables a framework install creates
var DefaultTables = []string{
	"migrations",
	"failed_jobs",
	"password_reset_tokens",
	"personal_access_tokens",
	"jobs",
	"job_batches",
	"notifications",
	"cache",
	"sessions",
}

// Defaults is a set of framework default table names
type Defaults map[string]bool

// NewDefaults returns DefaultTables extended with extra names
func NewDefaults(extra ...string) Defaults {
	result := make(Defaults, len(DefaultTables)+len(extra))
	for _, name := range DefaultTables {
		result[name] = true
	}
	for _, name := range extra {
		if name = strings.TrimSpace(name); name != "" {
			result[name] = true
		}
	}
	return result
}

// Contains reports if table is a framework default table
func (d Defaults) Contains(table string) bool {
	return d[table]
}

// Group collects columns into tables. Custom tables come first and
// default tables last, each partition sorted by name. Column order
// within a table is kept as given.
func Group(columns []*Column, defaults Defaults) []*Table {
	index := map[string]*Table{}
	tables := []*Table{}
	for _, column := range columns {
		table, ok := index[column.Table]
		if !ok {
			table = &Table{
				Name:      column.Table,
				IsDefault: defaults.Contains(column.Table),
			}
			index[column.Table] = table
			tables = append(tables, table)
		}
		table.Columns = append(table.Columns, column)
	}

	sort.SliceStable(tables, func(i, j int) bool {
		a, b := tables[i], tables[j]
		if a.IsDefault != b.IsDefault {
			return !a.IsDefault
		}
		return a.Name < b.Name
	})
	return tables
}
