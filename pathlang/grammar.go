// Package pathlang implements the hierarchical path expression
// grammar used to navigate (Query), update (Update), and add rows to
// (Add) a value.Root. Paths are a small, regular token stream — an
// identifier, an optional brace- or bracket-wrapped raw segment, then
// zero or more dotted-field or bracketed segments — so unlike the
// data-line scanner in lex, a declarative participle grammar fits
// cleanly here.
package pathlang

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Brace", Pattern: `\{[^}]*\}`},
	{Name: "Bracket", Pattern: `\[[^\]]*\]`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Segment is one trailing path element: either a dotted field name or
// a bracketed raw value/index, per the grammar's "later-token" rules.
type Segment struct {
	Field   *string `"." @Ident`
	Bracket *string `| @Bracket`
}

// Path is a parsed path expression: a leading table name, an optional
// brace-wrapped key (the `table{key}` form, valid only as the first
// token), and zero or more trailing Segments.
type Path struct {
	Table    string     `@Ident`
	Brace    *string    `@Brace?`
	Segments []*Segment `@@*`
}

var parser = participle.MustBuild[Path](
	participle.Lexer(pathLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses raw path text (e.g. "orders{7}.items[0].qty") into a
// Path.
func Parse(raw string) (*Path, error) {
	return parser.ParseString("", raw)
}

// braceText strips the enclosing braces from a captured Brace token.
func braceText(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}

	return s
}

// bracketText strips the enclosing brackets from a captured Bracket
// token.
func bracketText(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}

	return s
}
