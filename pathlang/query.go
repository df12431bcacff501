package pathlang

import (
	"strconv"

	"github.com/rowscript/rowscript/value"
)

// context tracks what the last-visited path segment resolved to, so
// the next segment knows how to interpret itself: a single row, a
// group of rows (from a GroupedIndexed key), a bare value (inside a
// tuple projection), or nothing yet (still looking at the table
// itself).
type context struct {
	table *value.Table

	haveRow bool
	row     value.Row

	haveGroup bool
	group     []value.Row

	haveValue bool
	val       value.Value

	// tupleStruct names the table whose header_map projects the
	// current tuple value's elements by field name, when known.
	tupleStruct string
}

// Query navigates root along path and returns the Value it resolves
// to, or (Null, false) if any segment fails to resolve.
func Query(root value.Root, path string) (value.Value, bool) {
	p, err := Parse(path)
	if err != nil {
		return value.Null, false
	}

	table, ok := root[p.Table]
	if !ok {
		return value.Null, false
	}

	ctx := context{table: table}

	if p.Brace != nil {
		key := braceText(*p.Brace)
		if !resolveKeyed(&ctx, table, key) {
			return value.Null, false
		}
	} else if len(p.Segments) > 0 && p.Segments[0].Field != nil {
		resolveBareTableForQuery(&ctx, table)
	}

	for _, seg := range p.Segments {
		if seg.Field != nil {
			if !stepField(root, &ctx, *seg.Field) {
				return value.Null, false
			}
			continue
		}

		if seg.Bracket != nil {
			if !stepBracket(&ctx, bracketText(*seg.Bracket)) {
				return value.Null, false
			}
			continue
		}
	}

	if ctx.haveValue {
		return ctx.val, true
	}

	return value.Null, false
}

// resolveKeyed handles the first-token `table{k}` form.
func resolveKeyed(ctx *context, table *value.Table, key string) bool {
	switch table.Data.Kind {
	case value.Indexed:
		row, ok := table.Data.Idx[key]
		if !ok {
			return false
		}
		ctx.row, ctx.haveRow = row, true
		return true

	case value.GroupedIndexed:
		rows, ok := table.Data.GIdx[key]
		if !ok {
			return false
		}
		ctx.group, ctx.haveGroup = rows, true
		return true

	case value.Sequential:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(table.Data.Seq) {
			return false
		}
		ctx.row, ctx.haveRow = table.Data.Seq[i], true
		return true

	default:
		return false
	}
}

// resolveBareTableForQuery handles Query's first-token bare `table`
// form when the next segment is a field (a leading `[i]` selects the
// row itself): any Sequential table with at least one row defaults to its
// row 0, so that a trailing field can be written as table.field
// rather than table{0}.field. Any other shape leaves context pointing
// at the table itself, to be resolved by the next segment.
func resolveBareTableForQuery(ctx *context, table *value.Table) {
	if table.Data.Kind == value.Sequential && len(table.Data.Seq) >= 1 {
		ctx.row, ctx.haveRow = table.Data.Seq[0], true
	}
}

// resolveBareTableForUpdate handles Update's first-token bare `table`
// form when the next segment is a field (a leading `[i]` selects the
// row itself): only a single-row Sequential table resolves directly to its
// one row. A multi-row table is ambiguous to write through bare and is
// left pointing at the table itself, which later fails to resolve.
func resolveBareTableForUpdate(ctx *context, table *value.Table) {
	if table.Data.Kind == value.Sequential && len(table.Data.Seq) == 1 {
		ctx.row, ctx.haveRow = table.Data.Seq[0], true
	}
}

// stepField applies a ".field" segment.
func stepField(root value.Root, ctx *context, field string) bool {
	switch {
	case ctx.haveValue:
		if ctx.val.Kind != value.KindTuple || ctx.tupleStruct == "" {
			return false
		}

		structTable, ok := root[ctx.tupleStruct]
		if !ok {
			return false
		}

		idx := -1
		for i, h := range structTable.Headers {
			if h.Name == field {
				idx = i
				break
			}
		}

		if idx < 0 || idx >= len(ctx.val.Elems) {
			return false
		}

		ctx.val = ctx.val.Elems[idx]
		ctx.tupleStruct = tupleStructFor(structTable, field)
		return true

	case ctx.haveRow:
		v, ok := ctx.row[field]
		if !ok {
			return false
		}

		if v.Kind == value.KindReference {
			target, ok := root[v.RefType]
			if !ok {
				return false
			}

			key, ok := value.CanonicalKey(*v.RefKey)
			if !ok {
				return false
			}

			var row value.Row
			switch target.Data.Kind {
			case value.Indexed:
				row, ok = target.Data.Idx[key]
			case value.Sequential:
				if len(target.Data.Seq) == 1 {
					row, ok = target.Data.Seq[0], true
				} else if i, err := strconv.Atoi(key); err == nil && i >= 0 && i < len(target.Data.Seq) {
					row, ok = target.Data.Seq[i], true
				}
			}

			if !ok {
				return false
			}

			ctx.table = target
			ctx.row, ctx.haveRow = row, true
			ctx.haveValue = false
			return true
		}

		ctx.val, ctx.haveValue = v, true
		if v.Kind == value.KindTuple {
			ctx.tupleStruct = tupleStructFor(ctx.table, field)
		}
		return true

	case ctx.table.Data.Kind == value.Indexed:
		row, ok := ctx.table.Data.Idx[field]
		if !ok {
			return false
		}
		ctx.row, ctx.haveRow = row, true
		return true

	case ctx.table.Data.Kind == value.GroupedIndexed:
		rows, ok := ctx.table.Data.GIdx[field]
		if !ok {
			return false
		}
		ctx.group, ctx.haveGroup = rows, true
		return true

	default:
		return false
	}
}

// tupleStructFor returns the table name that names the structure of
// field's value on owner, i.e. the header's type_info when it names
// another table rather than a primitive or special tag.
func tupleStructFor(owner *value.Table, field string) string {
	h, ok := owner.Field(field)
	if !ok || !h.HasTypeInfo || value.IsPrimitiveOrSpecialType(h.TypeInfo) {
		return ""
	}

	return h.TypeInfo
}

// stepBracket applies a "[v]" segment.
func stepBracket(ctx *context, raw string) bool {
	switch {
	case ctx.haveValue && ctx.val.Kind == value.KindTuple:
		i, err := strconv.Atoi(raw)
		if err != nil || i < 0 || i >= len(ctx.val.Elems) {
			return false
		}
		ctx.val = ctx.val.Elems[i]
		return true

	case ctx.haveGroup:
		i, err := strconv.Atoi(raw)
		if err != nil || i < 0 || i >= len(ctx.group) {
			return false
		}
		ctx.row, ctx.haveRow = ctx.group[i], true
		ctx.haveGroup, ctx.group = false, nil
		return true

	case !ctx.haveRow && !ctx.haveValue:
		switch ctx.table.Data.Kind {
		case value.Sequential:
			i, err := strconv.Atoi(raw)
			if err != nil || i < 0 || i >= len(ctx.table.Data.Seq) {
				return false
			}
			ctx.row, ctx.haveRow = ctx.table.Data.Seq[i], true
			return true

		case value.Indexed:
			row, ok := ctx.table.Data.Idx[raw]
			if !ok {
				return false
			}
			ctx.row, ctx.haveRow = row, true
			return true

		case value.GroupedIndexed:
			rows, ok := ctx.table.Data.GIdx[raw]
			if !ok {
				return false
			}
			ctx.group, ctx.haveGroup = rows, true
			return true

		default:
			return false
		}

	default:
		return false
	}
}
