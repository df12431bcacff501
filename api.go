package rowscript

import (
	"github.com/rowscript/rowscript/builder"
	"github.com/rowscript/rowscript/pack"
	"github.com/rowscript/rowscript/pathlang"
	"github.com/rowscript/rowscript/value"
)

// Root is the parsed/built document: every table declared or imported
// by a source, keyed by table name.
type Root = value.Root

// Warning is a non-fatal diagnostic produced while building a
// document: a malformed value that fell back to a string, a
// CopyStructure/Reference source that could not be resolved and was
// skipped, a table redefinition, or similar.
type Warning = builder.Warning

// PackRequest is a `pack t1 t2 ...` statement found in a document. It
// is returned by Build rather than executed automatically, since
// acting on it requires the pack package which builder does not
// import.
type PackRequest = builder.PackRequest

// SourceLoader resolves the path named by a CopyStructure or Reference
// statement to its source text. This is the library's only I/O seam;
// pass nil if the document being built issues no such statements.
type SourceLoader = builder.SourceLoader

// Parse scans a document's statements without merging them into a
// Root. Most callers want Build instead; Parse is useful for
// inspecting a document's directives directly, as CopyStructure does
// internally when it needs the header schema of a table declared
// elsewhere.
func Parse(filename, src string) ([]builder.Statement, []Warning, error) {
	return builder.Parse(filename, src)
}

// Build parses src and merges its statements into a Root: CopyStructure
// shells, then Reference imports, then local Definitions (merged
// against any matching shell), then Update/Add statements, in that
// order. Per-directive problems are recorded as Warnings and that
// directive is skipped; Build only returns an error for an
// unrecoverable syntax problem.
func Build(filename, src string, load SourceLoader) (*Root, []PackRequest, []Warning, error) {
	return builder.Build(filename, src, load)
}

// Query navigates root along path (e.g. "orders{7}.items[0].qty") and
// returns the Value it resolves to, or (Null, false) if any segment
// fails to resolve.
func Query(root Root, path string) (value.Value, bool) {
	return pathlang.Query(root, path)
}

// Update assigns the parsed form of rawValue to the scalar cell path
// resolves to. The root is left unchanged on error.
func Update(root Root, path, rawValue string) error {
	return pathlang.Update(root, path, rawValue)
}

// Add appends an all-Null row to the named table (a sindex primary key
// is set to the row's position).
func Add(root Root, tableName string) error {
	return pathlang.Add(root, tableName)
}

// Pack serializes the named tables, in the order given, to DSL text.
func Pack(root Root, tables []string) (string, error) {
	return pack.Pack(root, tables)
}
