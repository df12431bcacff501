// Package pack serializes a value.Root back to rowscript DSL text —
// the deterministic, round-tripping counterpart to builder.Parse and
// builder.Build.
package pack

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rowscript/rowscript/value"
)

// encoder wraps a bufio.Writer with small write helpers, in the same
// shape as a streaming text encoder: callers drive it table by table,
// row by row, and it is responsible only for the low-level formatting.
type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) writeString(s string) {
	if e.err != nil {
		return
	}

	_, e.err = e.w.WriteString(s)
}

// Pack serializes the named tables, in the order given, to DSL text.
// Packing a table still held as RawLines (never resolved by a
// Definition that supplied it with headers) is a structural error.
func Pack(root value.Root, tables []string) (string, error) {
	var sb strings.Builder
	enc := &encoder{w: bufio.NewWriter(&sb)}

	for i, name := range tables {
		table, ok := root[name]
		if !ok {
			return "", fmt.Errorf("no such table %q", name)
		}

		if table.Data.Kind == value.RawLines {
			return "", fmt.Errorf("table %q was never resolved to a header schema and cannot be packed", name)
		}

		if i > 0 {
			enc.writeString("~\n")
		}

		packTable(enc, table)
	}

	if enc.err != nil {
		return "", enc.err
	}

	if err := enc.w.Flush(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func packTable(enc *encoder, table *value.Table) {
	enc.writeString(table.Name)
	enc.writeString(":\n")
	enc.writeString(headerLine(table.Headers))
	enc.writeString("\n")

	rows := orderedRows(table)
	for _, row := range rows {
		enc.writeString(serializeRow(table.Headers, row))
		enc.writeString("\n")
	}
}

// headerLine renders the table's header schema as a `/h1/h2/.../`
// line, or `//` when the table has no headers.
func headerLine(headers []value.HeaderField) string {
	if len(headers) == 0 {
		return "//"
	}

	var sb strings.Builder
	sb.WriteByte('/')

	for i, h := range headers {
		if i > 0 {
			sb.WriteByte('/')
		}

		sb.WriteString(h.Name)

		if h.HasTypeInfo {
			if h.IsPrimaryKey {
				sb.WriteByte(':')
			} else {
				sb.WriteString("::")
			}

			sb.WriteString(h.TypeInfo)
		}
	}

	sb.WriteByte('/')

	return sb.String()
}

// orderedRows returns table's rows in the order the serializer must
// emit them: Sequential in insertion order; Indexed and GroupedIndexed
// in ascending canonical-key-string order, the latter emitting every
// row of a key's group before moving to the next key.
func orderedRows(table *value.Table) []value.Row {
	switch table.Data.Kind {
	case value.Sequential:
		return table.Data.Seq

	case value.Indexed:
		keys := table.Data.SortedKeys()
		rows := make([]value.Row, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, table.Data.Idx[k])
		}
		return rows

	case value.GroupedIndexed:
		keys := table.Data.SortedKeys()
		var rows []value.Row
		for _, k := range keys {
			rows = append(rows, table.Data.GIdx[k]...)
		}
		return rows

	default:
		return nil
	}
}

func serializeRow(headers []value.HeaderField, row value.Row) string {
	parts := make([]string, len(headers))
	for i, h := range headers {
		parts[i] = SerializeValue(row[h.Name])
	}

	return strings.Join(parts, ",")
}

// SerializeValue renders one cell value in canonical pack form: a
// String is quoted (single quotes, inner quotes doubled) only when it
// contains a character that would otherwise be ambiguous (`,()' ` or
// is empty); an Integer renders as decimal text; a Tuple renders as a
// parenthesized, comma-joined list of its elements; a Reference
// renders as its key alone, parenthesized (the referenced table name
// is not part of the serialized form, since it is recovered from the
// column's header type_info on reparse); Null renders as the empty
// string.
func SerializeValue(v value.Value) string {
	switch v.Kind {
	case value.KindString:
		return serializeString(v.Str)

	case value.KindInteger:
		return fmt.Sprintf("%d", v.Int)

	case value.KindTuple:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = SerializeValue(e)
		}
		return "(" + strings.Join(parts, ",") + ")"

	case value.KindReference:
		return "(" + SerializeValue(*v.RefKey) + ")"

	default:
		return ""
	}
}

func serializeString(s string) string {
	if needsQuoting(s) {
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}

	return s
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}

	return strings.ContainsAny(s, ",()' ")
}
