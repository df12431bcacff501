package value

import "sort"

// Row maps header name to the cell Value for one record.
type Row map[string]Value

// Clone returns a shallow-independent copy of the row (Values are
// themselves immutable-by-convention, so a shallow map copy suffices).
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

// DataKind identifies which of the four storage disciplines a Table's
// data uses.
type DataKind int

const (
	// Sequential holds rows in insertion order, with no key lookup.
	Sequential DataKind = iota
	// Indexed holds at most one row per canonical key string.
	Indexed
	// GroupedIndexed holds an ordered slice of rows per canonical key
	// string, preserving insertion order within each group.
	GroupedIndexed
	// RawLines holds the unparsed data lines of a Definition block
	// that had no header line, awaiting the headers of a CopyStructure
	// shell of the same name.
	RawLines
)

// TableData is the tagged union backing Table.Data. Exactly one field
// is meaningful, selected by Kind.
type TableData struct {
	Kind DataKind

	Seq     []Row
	Idx     map[string]Row
	GIdx    map[string][]Row
	Lines   []string
}

func NewSequential() TableData {
	return TableData{Kind: Sequential}
}

func NewIndexed() TableData {
	return TableData{Kind: Indexed, Idx: map[string]Row{}}
}

func NewGroupedIndexed() TableData {
	return TableData{Kind: GroupedIndexed, GIdx: map[string][]Row{}}
}

func NewRawLines(lines []string) TableData {
	return TableData{Kind: RawLines, Lines: lines}
}

// Len reports the number of rows held, regardless of discipline.
// RawLines reports its line count.
func (d TableData) Len() int {
	switch d.Kind {
	case Sequential:
		return len(d.Seq)
	case Indexed:
		return len(d.Idx)
	case GroupedIndexed:
		n := 0
		for _, rows := range d.GIdx {
			n += len(rows)
		}
		return n
	default:
		return len(d.Lines)
	}
}

// SortedKeys returns the canonical keys of an Indexed or GroupedIndexed
// table's data in ascending string order, per the serializer's
// deterministic iteration rule.
func (d TableData) SortedKeys() []string {
	var keys []string
	switch d.Kind {
	case Indexed:
		keys = make([]string, 0, len(d.Idx))
		for k := range d.Idx {
			keys = append(keys, k)
		}
	case GroupedIndexed:
		keys = make([]string, 0, len(d.GIdx))
		for k := range d.GIdx {
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)
	return keys
}

// Table is one named table of the Root: its header schema plus its
// row data under one of the four TableData disciplines.
type Table struct {
	Name                string
	Headers             []HeaderField
	HeaderMap           map[string]HeaderField
	PrimaryKeyFieldName string
	Data                TableData

	// FromCopyStructure marks a shell created by a CopyStructure
	// statement that has not yet been filled in by a matching
	// Definition block (see spec §5 phase 3).
	FromCopyStructure bool
}

// NewTable builds a Table shell from a header list, deriving
// HeaderMap and PrimaryKeyFieldName and selecting the matching data
// discipline: sindex is Sequential, index is Indexed, gindex is
// GroupedIndexed. If no header selects an index discipline, data is
// Sequential.
func NewTable(name string, headers []HeaderField) *Table {
	t := &Table{
		Name:      name,
		Headers:   headers,
		HeaderMap: make(map[string]HeaderField, len(headers)),
	}

	for _, h := range headers {
		t.HeaderMap[h.Name] = h
	}

	for _, h := range headers {
		if disc, ok := h.IndexDiscipline(); ok {
			t.PrimaryKeyFieldName = h.Name
			switch disc {
			case "sindex":
				t.Data = NewSequential()
			case "index":
				t.Data = NewIndexed()
			case "gindex":
				t.Data = NewGroupedIndexed()
			}
			return t
		}
	}

	t.Data = NewSequential()
	return t
}

// Field looks up a header by name.
func (t *Table) Field(name string) (HeaderField, bool) {
	h, ok := t.HeaderMap[name]
	return h, ok
}

// Root is the parsed/built document: every table declared or produced
// by a source, keyed by table name.
type Root map[string]*Table
