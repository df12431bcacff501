// Package value defines the in-memory data model: the Value sum type,
// table headers, rows, and the three indexing disciplines a Table's
// data can be stored under.
package value

import (
	"strconv"
	"strings"
)

// Kind identifies which alternative of Value is populated.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindTuple
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindTuple:
		return "tuple"
	case KindReference:
		return "reference"
	default:
		return "null"
	}
}

// Value is the tagged union every cell and tuple element holds. Exactly
// one of the payload fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Str  string
	Int  int64
	Elems []Value

	RefType string
	RefKey  *Value
}

// Null is the zero Value.
var Null = Value{Kind: KindNull}

func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func Integer(i int64) Value {
	return Value{Kind: KindInteger, Int: i}
}

func Tuple(elems ...Value) Value {
	return Value{Kind: KindTuple, Elems: elems}
}

func Reference(typeName string, key Value) Value {
	k := key
	return Value{Kind: KindReference, RefType: typeName, RefKey: &k}
}

func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Equal reports structural equality, as required of Value comparisons
// throughout the data model.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case KindNull:
		return true
	case KindString:
		return v.Str == o.Str
	case KindInteger:
		return v.Int == o.Int
	case KindTuple:
		if len(v.Elems) != len(o.Elems) {
			return false
		}
		for i := range v.Elems {
			if !v.Elems[i].Equal(o.Elems[i]) {
				return false
			}
		}
		return true
	case KindReference:
		return v.RefType == o.RefType && v.RefKey != nil && o.RefKey != nil && v.RefKey.Equal(*o.RefKey)
	default:
		return false
	}
}

// TypeName is the lower-case name of the Value's alternative, used in
// type-mismatch error messages.
func (v Value) TypeName() string {
	return v.Kind.String()
}

// CanonicalKey renders a Value as the canonical string key used by the
// Indexed and GroupedIndexed table data variants: a String is its own
// text, an Integer its decimal text, Null the empty string, and a Tuple
// "(" + its elements' keys comma-joined + ")". A Reference (directly
// or inside a Tuple) has no key.
func CanonicalKey(v Value) (string, bool) {
	switch v.Kind {
	case KindString:
		return v.Str, true
	case KindInteger:
		return strconv.FormatInt(v.Int, 10), true
	case KindNull:
		// a freshly Add-ed row has no primary key value yet; it is
		// keyed under the empty string until an Update fills it in.
		return "", true
	case KindTuple:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			k, ok := CanonicalKey(e)
			if !ok {
				return "", false
			}
			parts[i] = k
		}
		return "(" + strings.Join(parts, ",") + ")", true
	default:
		return "", false
	}
}
