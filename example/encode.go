package example

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrorJSON is rendered when a row can't be encoded at all
const ErrorJSON = `{
    "error": "example row could not be encoded"
}`

// Encode pretty-prints a row. The result is always valid JSON: when
// encoding fails, non-primitive values are replaced with Placeholder
// and the row is encoded again, and ErrorJSON is returned if that fails
// too. A non-nil error reports such a degraded result.
func Encode(row *Row) (string, error) {
	result, err := encode(row)
	if err == nil {
		return result, nil
	}

	result, retryErr := encode(Coerce(row))
	if retryErr == nil {
		return result, errors.Wrap(err, "encoding example row, replaced values with placeholder")
	}
	return ErrorJSON, errors.Wrap(retryErr, "encoding example row")
}

func encode(row *Row) (string, error) {
	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(row); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Coerce returns a copy of row where every value that isn't a JSON
// primitive is replaced with Placeholder
func Coerce(row *Row) *Row {
	result := NewRow()
	for _, key := range row.Keys() {
		value, _ := row.Get(key)
		if !isPrimitive(value) {
			value = Placeholder
		}
		result.Set(key, value)
	}
	return result
}

func isPrimitive(value interface{}) bool {
	switch val := value.(type) {
	case nil, bool, string:
		return true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return !math.IsNaN(float64(val)) && !math.IsInf(float64(val), 0)
	case float64:
		return !math.IsNaN(val) && !math.IsInf(val, 0)
	case json.Number:
		_, err := strconv.ParseFloat(string(val), 64)
		return err == nil && json.Valid([]byte(val))
	}
	return false
}
