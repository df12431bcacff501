package lex

import (
	"strconv"
	"strings"

	"github.com/rowscript/rowscript/value"
)

// Warning is a non-fatal diagnostic produced while parsing a single
// value token, e.g. a declared "integer" column holding text that
// doesn't parse as one.
type Warning struct {
	Message string
}

// ParseValue implements the value-parsing cascade: tuple detection,
// then (if the column declares a type_info) a type-hint dispatch, then
// a fallback cascade of integer, boolean-as-string, quoted-string
// unwrap, and finally bare string. typeInfo/hasTypeInfo come from the
// column's HeaderField; pass hasTypeInfo=false for untyped contexts
// such as tuple elements and reference keys.
func ParseValue(raw string, typeInfo string, hasTypeInfo bool) (value.Value, *Warning) {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return value.String(""), nil
	}

	if isParenWrapped(raw) {
		inner := raw[1 : len(raw)-1]

		if hasTypeInfo && !value.IsPrimitiveOrSpecialType(typeInfo) {
			key, warn := ParseValue(inner, "", false)
			return value.Reference(typeInfo, key), warn
		}

		elems := SplitTupleElements(inner)
		values := make([]value.Value, 0, len(elems))
		var warn *Warning
		for _, e := range elems {
			v, w := ParseValue(e, "", false)
			values = append(values, v)
			if w != nil {
				warn = w
			}
		}

		return value.Tuple(values...), warn
	}

	if strings.EqualFold(raw, "null") {
		if hasTypeInfo && typeInfo == "string" {
			return value.String(raw), nil
		}

		return value.Null, nil
	}

	// a bare (non-parenthesized) token under a column whose type_info
	// names another table is still a reference key, not a literal.
	if hasTypeInfo && !value.IsPrimitiveOrSpecialType(typeInfo) {
		key, warn := ParseValue(raw, "", false)
		return value.Reference(typeInfo, key), warn
	}

	if hasTypeInfo {
		switch typeInfo {
		case "integer":
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return value.Integer(n), nil
			}

			return fallback(raw), &Warning{Message: "column declared integer but value " + strconv.Quote(raw) + " does not parse as one; stored as a string"}

		case "boolean":
			if raw == "true" || raw == "false" {
				return value.String(raw), nil
			}

			return fallback(raw), &Warning{Message: "column declared boolean but value " + strconv.Quote(raw) + " is neither true nor false; stored as a string"}

		case "string":
			return value.String(raw), nil
		}
	}

	return fallback(raw), nil
}

// fallback applies the untyped cascade: integer, then boolean literal
// kept as a string, then quoted-string unwrap, then bare string.
func fallback(raw string) value.Value {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return value.Integer(n)
	}

	if raw == "true" || raw == "false" {
		return value.String(raw)
	}

	return unwrapQuoted(raw)
}

func isParenWrapped(s string) bool {
	return len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')'
}

// unwrapQuoted strips a single matching pair of surrounding quotes
// (single or double) and un-escapes the doubled/backslashed quote
// convention used when the same text was produced by pack. A string
// with no surrounding quotes passes through unchanged.
func unwrapQuoted(s string) value.Value {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		inner := s[1 : len(s)-1]
		return value.String(strings.ReplaceAll(inner, "''", "'"))
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		inner := s[1 : len(s)-1]
		return value.String(strings.ReplaceAll(inner, `\"`, `"`))
	}

	return value.String(s)
}
