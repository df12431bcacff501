package builder

import (
	"fmt"
	"strings"

	"github.com/rowscript/rowscript/pathlang"
	"github.com/rowscript/rowscript/token"
	"github.com/rowscript/rowscript/value"
)

// SourceLoader resolves a CopyStructure/Reference source path to its
// text. It is the library's only external-I/O seam; the host supplies
// it (filesystem, embedded assets, a test fixture map, whatever fits).
type SourceLoader func(path string) (string, bool)

// PackRequest is a `pack t1 t2 ...` statement extracted from a
// document, for the host to act on with the pack package after Build
// returns (builder does not import pack).
type PackRequest struct {
	Pos    token.Pos
	Tables []string
}

// Build parses src and merges its statements into a Root in the
// documented four-phase order: CopyStructure shells, Reference
// imports, local Definitions (merged against any matching shell), then
// Update/Add statements in document order. Per-directive errors are
// recorded as warnings and that directive is skipped; Build only
// returns an error for an unrecoverable syntax problem from Parse.
func Build(filename, src string, load SourceLoader) (*value.Root, []PackRequest, []Warning, error) {
	stmts, warnings, err := Parse(filename, src)
	if err != nil {
		return nil, nil, warnings, err
	}

	root := value.Root{}

	for _, stmt := range stmts {
		if stmt.StatementKind() != StmtCopyStructure {
			continue
		}

		shell, warns := copyStructureShell(stmt, load)
		warnings = append(warnings, warns...)
		if shell != nil {
			if _, exists := root[stmt.AsName]; exists {
				warnings = append(warnings, Warning{Pos: stmt.Pos(), Message: fmt.Sprintf("copy-structure target %q already exists; overwritten", stmt.AsName)})
			}
			root[stmt.AsName] = shell
		}
	}

	for _, stmt := range stmts {
		if stmt.StatementKind() != StmtReference {
			continue
		}

		table, warns := referenceImport(stmt, load)
		warnings = append(warnings, warns...)
		if table != nil {
			root[stmt.SourceName] = table
		}
	}

	for _, stmt := range stmts {
		if stmt.StatementKind() != StmtDefinition {
			continue
		}

		warnings = append(warnings, mergeDefinition(root, stmt)...)
	}

	var packs []PackRequest

	for _, stmt := range stmts {
		switch stmt.StatementKind() {
		case StmtUpdate:
			if err := pathlang.Update(root, stmt.Path, stmt.ValueText); err != nil {
				warnings = append(warnings, Warning{Pos: stmt.Pos(), Message: err.Error()})
			}

		case StmtAdd:
			if err := pathlang.Add(root, tableNameOf(stmt.TablePath)); err != nil {
				warnings = append(warnings, Warning{Pos: stmt.Pos(), Message: err.Error()})
			}

		case StmtPack:
			packs = append(packs, PackRequest{Pos: stmt.Pos(), Tables: stmt.Tables})
		}
	}

	return &root, packs, warnings, nil
}

// copyStructureShell resolves a CopyStructure statement to an empty
// shell table carrying the source table's header schema, marked
// FromCopyStructure so the Definitions phase knows to fill it in
// rather than treat it as a collision.
func copyStructureShell(stmt Statement, load SourceLoader) (*value.Table, []Warning) {
	text, ok := load(stmt.SourcePath)
	if !ok {
		return nil, []Warning{{Pos: stmt.Pos(), Message: fmt.Sprintf("cannot load copy-structure source %q", stmt.SourcePath)}}
	}

	srcStmts, _, err := Parse(stmt.SourcePath, text)
	if err != nil {
		return nil, []Warning{{Pos: stmt.Pos(), Message: fmt.Sprintf("cannot parse copy-structure source %q: %v", stmt.SourcePath, err)}}
	}

	for _, s := range srcStmts {
		if s.StatementKind() != StmtDefinition || s.Name != stmt.SourceName {
			continue
		}

		srcTable, warns := tableFromDefinition(s)
		shell := value.NewTable(stmt.AsName, srcTable.Headers)
		shell.FromCopyStructure = true

		return shell, warns
	}

	return nil, []Warning{{Pos: stmt.Pos(), Message: fmt.Sprintf("table %q not found in %q", stmt.SourceName, stmt.SourcePath)}}
}

// referenceImport resolves a Reference statement to the fully built
// source table (headers and data), imported unrenamed.
func referenceImport(stmt Statement, load SourceLoader) (*value.Table, []Warning) {
	text, ok := load(stmt.SourcePath)
	if !ok {
		return nil, []Warning{{Pos: stmt.Pos(), Message: fmt.Sprintf("cannot load reference source %q", stmt.SourcePath)}}
	}

	subRoot, _, warns, err := Build(stmt.SourcePath, text, load)
	if err != nil {
		return nil, append(warns, Warning{Pos: stmt.Pos(), Message: fmt.Sprintf("cannot build reference source %q: %v", stmt.SourcePath, err)})
	}

	table, ok := (*subRoot)[stmt.SourceName]
	if !ok {
		return nil, append(warns, Warning{Pos: stmt.Pos(), Message: fmt.Sprintf("table %q not found in %q", stmt.SourceName, stmt.SourcePath)})
	}

	return table, warns
}

// mergeDefinition applies phase 3's merge rule for one local
// Definition statement.
func mergeDefinition(root value.Root, stmt Statement) []Warning {
	built, warnings := tableFromDefinition(stmt)

	existing, exists := root[stmt.Name]
	switch {
	case !exists:
		root[stmt.Name] = built

	case existing.FromCopyStructure && existing.Data.Len() == 0:
		if built.Data.Kind == value.RawLines {
			reparsed, warns := reparseRawLines(stmt.Name, existing.Headers, built.Data.Lines)
			warnings = append(warnings, warns...)
			root[stmt.Name] = reparsed
		} else {
			root[stmt.Name] = built
		}

	default:
		warnings = append(warnings, Warning{Pos: stmt.Pos(), Message: fmt.Sprintf("table %q redefined; previous contents discarded", stmt.Name)})
		root[stmt.Name] = built
	}

	if root[stmt.Name].Data.Kind == value.RawLines {
		warnings = append(warnings, Warning{Pos: stmt.Pos(), Message: fmt.Sprintf("table %q has no header line and no copy-structure shell; its lines stay unparsed", stmt.Name)})
	}

	return warnings
}

// tableNameOf returns the leading table-name component of a `.table`,
// `.table{k}`, or `.table[i]` Add target.
func tableNameOf(tablePath string) string {
	if i := strings.IndexAny(tablePath, ".[{"); i >= 0 {
		return tablePath[:i]
	}

	return tablePath
}
