// Package builder turns rowscript source text into a Root: it scans
// statements (Definition blocks, CopyStructure, Reference, Update,
// Add, Pack), then merges them in the four-phase order the data model
// requires (copy-structure shells, reference imports, definitions,
// then updates/adds).
package builder

import "github.com/rowscript/rowscript/token"

// StatementKind identifies which directive a Statement carries.
type StatementKind int

const (
	StmtDefinition StatementKind = iota
	StmtCopyStructure
	StmtReference
	StmtUpdate
	StmtAdd
	StmtPack
)

// Statement is the sum type produced by Parse. Exactly the fields
// relevant to Kind are populated.
type Statement struct {
	kind StatementKind

	// Definition
	Name       string
	HeaderLine string
	HasHeader  bool
	DataLines  []string

	// CopyStructure / Reference
	SourceName string
	SourcePath string
	AsName     string

	// Update
	Path      string
	ValueText string

	// Add
	TablePath string

	// Pack
	Tables []string

	pos token.Pos
}

func (s Statement) Pos() token.Pos { return s.pos }

func (s Statement) StatementKind() StatementKind { return s.kind }

// Warning is a non-fatal diagnostic surfaced by Parse or Build.
type Warning struct {
	Pos     token.Pos
	Message string
}
