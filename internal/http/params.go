package http

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// encodeParams builds a query string. Slice and array values become
// comma-joined lists, nil values are skipped, and everything else is
// formatted with fmt.
func encodeParams(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}

	values := make(url.Values, len(params))

	for key, value := range params {
		if value == nil {
			continue
		}

		values.Set(key, formatParam(value))
	}

	return values.Encode()
}

func formatParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case []string:
		return strings.Join(v, ",")
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Sprint(value)
	}

	parts := make([]string, rv.Len())
	for i := range rv.Len() {
		parts[i] = fmt.Sprint(rv.Index(i).Interface())
	}

	return strings.Join(parts, ",")
}
