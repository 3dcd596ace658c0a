// Package properties holds the collection document model and the mutations
// the admin endpoint applies to it.
package properties

import (
	"fmt"
	"strconv"
)

// Property is an opaque listing record. Nothing beyond the id is typed or
// validated; title, price, address and the rest pass through untouched.
type Property map[string]any

// ID returns the string coercion of the record's id field. Identity is
// compared on this coercion, so the number 1 and the string "1" name the
// same record. Absent id coerces to "".
func (p Property) ID() string {
	return coerce(p["id"])
}

func coerce(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		// JSON numbers decode as float64; 1 and 1.0 both render "1"
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
