package value

import "strings"

// indexKinds are the type_info tags that select an indexing discipline
// for the table they appear on, per the primary-key rule: the first
// header whose type_info is one of these becomes the table's primary
// key and its discipline.
var indexKinds = map[string]bool{
	"sindex": true,
	"index":  true,
	"gindex": true,
}

// IsIndexDiscipline reports whether typeInfo names an indexing
// discipline (sindex/index/gindex) rather than a primitive hint or a
// referenced table name.
func IsIndexDiscipline(typeInfo string) bool {
	return indexKinds[typeInfo]
}

// primitive type_info hints recognised by the value parser and the
// tuple field-projection lookup; anything else is taken to name
// another table.
var primitiveOrSpecial = map[string]bool{
	"integer": true,
	"string":  true,
	"boolean": true,
	"date":    true,
	"datetime": true,
	"sindex":  true,
	"index":   true,
	"gindex":  true,
	"config":  true,
	"system":  true,
}

// IsPrimitiveOrSpecialType reports whether typeInfo is one of the
// built-in hints rather than the name of another table. A type_info
// containing "::" (a namespaced tag) is also treated as special.
func IsPrimitiveOrSpecialType(typeInfo string) bool {
	return primitiveOrSpecial[typeInfo] || strings.Contains(typeInfo, "::")
}

// HeaderField describes one column of a Table.
type HeaderField struct {
	Name         string
	TypeInfo     string
	HasTypeInfo  bool
	IsPrimaryKey bool
}

// IndexDiscipline returns the index discipline tag (sindex/index/gindex)
// this header selects, and whether it selects one at all.
func (h HeaderField) IndexDiscipline() (string, bool) {
	if h.HasTypeInfo && IsIndexDiscipline(h.TypeInfo) {
		return h.TypeInfo, true
	}

	return "", false
}
