package pathlang

import (
	"fmt"
	"strconv"

	"github.com/rowscript/rowscript/lex"
	"github.com/rowscript/rowscript/value"
)

// Update assigns the parsed form of rawValue to the scalar cell path
// resolves to, applying the coercion rules: assigning through Null on
// either side always succeeds; an Integer field accepting a String
// that parses as an integer is coerced to Integer; an Integer field
// accepting a non-numeric String is only accepted when the field has
// no declared type or is declared "string"; a String field accepting
// an Integer is coerced to its decimal text unless the field is
// declared "integer", in which case the Integer is kept. Any other
// Kind mismatch is a type error. The root is left unchanged on error.
func Update(root value.Root, path, rawValue string) error {
	p, err := Parse(path)
	if err != nil {
		return fmt.Errorf("malformed path %q: %w", path, err)
	}

	if len(p.Segments) == 0 {
		return fmt.Errorf("path %q does not resolve to a field", path)
	}

	table, ok := root[p.Table]
	if !ok {
		return fmt.Errorf("no such table %q", p.Table)
	}

	ctx := context{table: table}

	if p.Brace != nil {
		if !resolveKeyed(&ctx, table, braceText(*p.Brace)) {
			return fmt.Errorf("path %q: no row for key %q", path, braceText(*p.Brace))
		}
	} else if p.Segments[0].Field != nil {
		resolveBareTableForUpdate(&ctx, table)
	}

	last := p.Segments[len(p.Segments)-1]
	for _, seg := range p.Segments[:len(p.Segments)-1] {
		switch {
		case seg.Field != nil:
			if !stepField(root, &ctx, *seg.Field) {
				return fmt.Errorf("path %q: no field %q", path, *seg.Field)
			}
		case seg.Bracket != nil:
			if !stepBracket(&ctx, bracketText(*seg.Bracket)) {
				return fmt.Errorf("path %q: index %q out of range", path, bracketText(*seg.Bracket))
			}
		}
	}

	switch {
	case last.Field != nil:
		return updateField(root, &ctx, *last.Field, rawValue, path)
	case last.Bracket != nil:
		return updateBracket(&ctx, bracketText(*last.Bracket), rawValue, path)
	default:
		return fmt.Errorf("path %q: malformed trailing segment", path)
	}
}

func updateField(root value.Root, ctx *context, field, rawValue, path string) error {
	if ctx.haveValue && ctx.val.Kind == value.KindTuple && ctx.tupleStruct != "" {
		structTable, ok := root[ctx.tupleStruct]
		if !ok {
			return fmt.Errorf("path %q: unknown tuple structure %q", path, ctx.tupleStruct)
		}

		idx := -1
		var h value.HeaderField
		for i, hh := range structTable.Headers {
			if hh.Name == field {
				idx, h = i, hh
				break
			}
		}

		if idx < 0 || idx >= len(ctx.val.Elems) {
			return fmt.Errorf("path %q: tuple has no field %q", path, field)
		}

		newVal, _ := lex.ParseValue(rawValue, h.TypeInfo, h.HasTypeInfo)
		coerced, err := coerce(ctx.val.Elems[idx], newVal, h)
		if err != nil {
			return fmt.Errorf("path %q: %w", path, err)
		}

		ctx.val.Elems[idx] = coerced
		return nil
	}

	if ctx.haveRow {
		h, _ := ctx.table.Field(field)
		newVal, _ := lex.ParseValue(rawValue, h.TypeInfo, h.HasTypeInfo)

		coerced, err := coerce(ctx.row[field], newVal, h)
		if err != nil {
			return fmt.Errorf("path %q: %w", path, err)
		}

		ctx.row[field] = coerced
		return nil
	}

	return fmt.Errorf("path %q does not resolve to a scalar field", path)
}

func updateBracket(ctx *context, raw, rawValue, path string) error {
	if ctx.haveValue && ctx.val.Kind == value.KindTuple {
		i, err := strconv.Atoi(raw)
		if err != nil || i < 0 || i >= len(ctx.val.Elems) {
			return fmt.Errorf("path %q: tuple index %q out of range", path, raw)
		}

		newVal, _ := lex.ParseValue(rawValue, "", false)
		ctx.val.Elems[i] = newVal
		return nil
	}

	return fmt.Errorf("path %q: trailing index does not resolve to a scalar field", path)
}

// coerce applies the Update coercion rules described on Update.
func coerce(old, next value.Value, h value.HeaderField) (value.Value, error) {
	if old.Kind == value.KindNull || next.Kind == value.KindNull {
		return next, nil
	}

	if old.Kind == next.Kind {
		return next, nil
	}

	if old.Kind == value.KindInteger && next.Kind == value.KindString {
		if n, err := strconv.ParseInt(next.Str, 10, 64); err == nil {
			return value.Integer(n), nil
		}

		if !h.HasTypeInfo || h.TypeInfo == "string" {
			return next, nil
		}

		return value.Value{}, fmt.Errorf("cannot assign %q to integer field %q", next.Str, h.Name)
	}

	if old.Kind == value.KindString && next.Kind == value.KindInteger {
		if h.HasTypeInfo && h.TypeInfo == "integer" {
			return next, nil
		}

		return value.String(strconv.FormatInt(next.Int, 10)), nil
	}

	return value.Value{}, fmt.Errorf("cannot assign a %s to a %s field %q", next.TypeName(), old.TypeName(), h.Name)
}

// Add appends an all-Null row to the named table, per the `.table.add()`
// statement: every header starts Null and is filled in by later
// Update statements, except a sindex primary key, which AddRow sets to
// the row's position.
func Add(root value.Root, tableName string) error {
	table, ok := root[tableName]
	if !ok {
		return fmt.Errorf("no such table %q", tableName)
	}

	row := make(value.Row, len(table.Headers))
	for _, h := range table.Headers {
		row[h.Name] = value.Null
	}

	return table.AddRow(row)
}
