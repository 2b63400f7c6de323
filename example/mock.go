package example

import (
	"encoding/json"
	"strings"

	"github.com/titpetric/dbdocs/schema"
)

type mockRule struct {
	matches []string
	value   interface{}
}

// mockRules are checked in order, the first match wins
var mockRules = []mockRule{
	{[]string{"int"}, 0},
	{[]string{"varchar", "text"}, "example"},
	{[]string{"timestamp", "datetime"}, "2025-01-01 00:00:00"},
	{[]string{"date"}, "2025-01-01"},
	// keeps the fraction in the encoded output
	{[]string{"decimal", "float"}, json.Number("0.0")},
}

// MockValue returns a placeholder value for a column type
func MockValue(columnType string) interface{} {
	for _, rule := range mockRules {
		for _, match := range rule.matches {
			if strings.Contains(columnType, match) {
				return rule.value
			}
		}
	}
	return nil
}

// Mock builds a synthetic row from column types
func Mock(columns []*schema.Column) *Row {
	row := NewRow()
	for _, column := range columns {
		row.Set(column.Name, MockValue(column.Type))
	}
	return row
}
