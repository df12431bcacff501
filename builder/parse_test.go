package builder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefinitionBlock(t *testing.T) {
	src := "customers:\n" +
		"/id:index/name/\n" +
		"1,'Ada'\n" +
		"2,'Grace'\n" +
		"~\n"

	stmts, warnings, err := Parse("test.rs", src)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, stmts, 1)

	s := stmts[0]
	require.Equal(t, StmtDefinition, s.StatementKind())
	require.Equal(t, "customers", s.Name)
	require.True(t, s.HasHeader)
	require.Equal(t, "/id:index/name/", s.HeaderLine)
	require.Equal(t, []string{"1,'Ada'", "2,'Grace'"}, s.DataLines)
}

func TestParseCommentsAndUpdateAndAdd(t *testing.T) {
	src := "# a comment\n" +
		"## a doc comment\n" +
		"#.customers{1}.name = 'Ada Lovelace'\n" +
		".customers.add()\n" +
		"pack customers orders\n"

	stmts, _, err := Parse("test.rs", src)
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	require.Equal(t, StmtUpdate, stmts[0].StatementKind())
	require.Equal(t, "customers{1}.name", stmts[0].Path)
	require.Equal(t, "'Ada Lovelace'", stmts[0].ValueText)

	require.Equal(t, StmtAdd, stmts[1].StatementKind())
	require.Equal(t, "customers", stmts[1].TablePath)

	require.Equal(t, StmtPack, stmts[2].StatementKind())
	require.Equal(t, []string{"customers", "orders"}, stmts[2].Tables)
}

func TestParseCopyStructureAndReference(t *testing.T) {
	src := "local from \"other.rs\" as localCopy\n" +
		"remote from \"other.rs\"\n"

	stmts, _, err := Parse("test.rs", src)
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	require.Equal(t, StmtCopyStructure, stmts[0].StatementKind())
	require.Equal(t, "local", stmts[0].SourceName)
	require.Equal(t, "other.rs", stmts[0].SourcePath)
	require.Equal(t, "localCopy", stmts[0].AsName)

	require.Equal(t, StmtReference, stmts[1].StatementKind())
	require.Equal(t, "remote", stmts[1].SourceName)
}

func TestParseUnclosedBlockErrors(t *testing.T) {
	src := "customers:\n/id:index/\n1\n"

	_, _, err := Parse("test.rs", src)
	require.Error(t, err)
}
