package model

import (
	"strings"

	"github.com/jinzhu/inflection"
	"github.com/serenize/snaker"
)

// TableName returns the conventional table name for a model name,
// the plural snake case form: OrderItem becomes order_items.
func TableName(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return inflection.Plural(snaker.CamelToSnake(name))
}

// modelName returns the model name for a manifest file name,
// order_item.yaml becomes OrderItem.
func modelName(filename string) string {
	base := filename
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = strings.NewReplacer("-", "_", " ", "_").Replace(base)
	if strings.Contains(base, "_") || strings.ToLower(base) == base {
		return snaker.SnakeToCamel(strings.ToLower(base))
	}
	return strings.ToUpper(base[:1]) + base[1:]
}

// qualify prefixes name with namespace unless it is already qualified
func qualify(namespace, name string) string {
	if namespace == "" || strings.Contains(name, ".") {
		return name
	}
	return namespace + "." + name
}
