package builder

import (
	"strings"

	"github.com/rowscript/rowscript/value"
)

// parseHeaderLine parses a `/h1/h2/.../` header line into ordered
// HeaderFields. NAME:TYPE and NAME::TYPE both set TYPE as the
// type_info (an index discipline, a primitive hint, or the name of
// another table for a reference column); only the single-colon form
// sets IsPrimaryKey, which pack uses to write the field back in the
// same form. A bare NAME carries no type_info. The table's primary key
// is chosen by value.NewTable: the first header, in either form, whose
// type_info is an index discipline.
func parseHeaderLine(line string) []value.HeaderField {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "/")
	line = strings.TrimSuffix(line, "/")

	if line == "" {
		return nil
	}

	parts := strings.Split(line, "/")
	headers := make([]value.HeaderField, 0, len(parts))

	for _, p := range parts {
		headers = append(headers, parseHeaderField(p))
	}

	return headers
}

func parseHeaderField(field string) value.HeaderField {
	if idx := strings.Index(field, "::"); idx >= 0 {
		return value.HeaderField{
			Name:        field[:idx],
			TypeInfo:    field[idx+2:],
			HasTypeInfo: true,
		}
	}

	if idx := strings.Index(field, ":"); idx >= 0 {
		return value.HeaderField{
			Name:         field[:idx],
			TypeInfo:     field[idx+1:],
			HasTypeInfo:  true,
			IsPrimaryKey: true,
		}
	}

	return value.HeaderField{Name: field}
}
