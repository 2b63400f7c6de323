package example

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Placeholder replaces values which can't be shown as JSON scalars
const Placeholder = "[non-serializable]"

type valueKind int

const (
	kindString valueKind = iota
	kindInteger
	kindFloat
	kindDecimal
	kindBinary
)

var numericTypes = map[string]valueKind{
	"tinyint":   kindInteger,
	"smallint":  kindInteger,
	"mediumint": kindInteger,
	"int":       kindInteger,
	"integer":   kindInteger,
	"bigint":    kindInteger,
	"float":     kindFloat,
	"double":    kindFloat,
	"real":      kindFloat,
	// `decimal` - keep the exact digits, don't round through float64
	"decimal": kindDecimal,
	"numeric": kindDecimal,
}

var binaryTypes = map[string]bool{
	"binary":     true,
	"varbinary":  true,
	"blob":       true,
	"tinyblob":   true,
	"mediumblob": true,
	"longblob":   true,
	"bit":        true,
	"geometry":   true,
	"point":      true,
	"linestring": true,
	"polygon":    true,
}

func kindOf(dataType string) valueKind {
	dataType = strings.ToLower(dataType)
	if idx := strings.IndexAny(dataType, " ("); idx > 0 {
		dataType = dataType[:idx]
	}
	if val, ok := numericTypes[dataType]; ok {
		return val
	}
	if binaryTypes[dataType] {
		return kindBinary
	}
	return kindString
}

// convert turns a scanned driver value into a JSON scalar
func convert(value interface{}, dataType string) interface{} {
	kind := kindOf(dataType)

	switch val := value.(type) {
	case nil:
		return nil
	case []byte:
		if kind == kindBinary || !utf8.Valid(val) {
			return Placeholder
		}
		return convertText(string(val), kind)
	case string:
		if kind == kindBinary {
			return Placeholder
		}
		return convertText(val, kind)
	case int64, int32, int, uint64, uint32, float64, float32, bool:
		return val
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	}
	return Placeholder
}

func convertText(text string, kind valueKind) interface{} {
	switch kind {
	case kindInteger:
		if val, err := strconv.ParseInt(text, 10, 64); err == nil {
			return val
		}
		if val, err := strconv.ParseUint(text, 10, 64); err == nil {
			return val
		}
	case kindFloat:
		if val, err := strconv.ParseFloat(text, 64); err == nil {
			return val
		}
	case kindDecimal:
		if _, err := strconv.ParseFloat(text, 64); err == nil && json.Valid([]byte(text)) {
			return json.Number(text)
		}
	}
	return text
}
