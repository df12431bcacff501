package builder

import (
	"regexp"
	"strings"

	"github.com/rowscript/rowscript/token"
)

var (
	reCopyStructure = regexp.MustCompile(`^(\w+)\s+from\s+"([^"]+)"\s+as\s+(\w+)$`)
	reReference     = regexp.MustCompile(`^(\w+)\s+from\s+"([^"]+)"$`)
	reDefStart      = regexp.MustCompile(`^(\w+):$`)
	reHeaderLine    = regexp.MustCompile(`^/.*/$`)
	reAdd           = regexp.MustCompile(`^\.([A-Za-z0-9_.\[\]{}]+)\.add\(\)$`)
	reUpdate        = regexp.MustCompile(`^#\.([^=]+)=(.*)$`)
)

// Parse scans src (from the named file, used only for error
// positions) into the ordered list of Statements it declares, or an
// error for the first unrecoverable syntax problem. Parse records no
// warnings of its own; the returned Warning slice is always empty.
func Parse(filename, src string) ([]Statement, []Warning, error) {
	lines := strings.Split(src, "\n")

	var stmts []Statement
	var warnings []Warning

	for i := 0; i < len(lines); i++ {
		lineNo := i + 1
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)

		pos := token.Pos{File: filename, Line: lineNo, Col: 1}

		switch {
		case trimmed == "":
			continue

		case strings.HasPrefix(trimmed, "##"):
			continue

		case strings.HasPrefix(trimmed, "#."):
			m := reUpdate.FindStringSubmatch(trimmed)
			if m == nil {
				return stmts, warnings, token.NewPosError(token.NewNode(pos, pos), "malformed update statement: "+trimmed)
			}

			stmts = append(stmts, Statement{
				kind:      StmtUpdate,
				Path:      strings.TrimSpace(m[1]),
				ValueText: strings.TrimSpace(m[2]),
				pos:       pos,
			})

		case strings.HasPrefix(trimmed, "#"):
			continue

		case strings.HasPrefix(trimmed, "pack "):
			fields := strings.Fields(strings.TrimPrefix(trimmed, "pack "))
			stmts = append(stmts, Statement{kind: StmtPack, Tables: fields, pos: pos})

		case reAdd.MatchString(trimmed):
			m := reAdd.FindStringSubmatch(trimmed)
			stmts = append(stmts, Statement{kind: StmtAdd, TablePath: m[1], pos: pos})

		case reCopyStructure.MatchString(trimmed):
			m := reCopyStructure.FindStringSubmatch(trimmed)
			stmts = append(stmts, Statement{
				kind:       StmtCopyStructure,
				SourceName: m[1],
				SourcePath: m[2],
				AsName:     m[3],
				pos:        pos,
			})

		case reReference.MatchString(trimmed):
			m := reReference.FindStringSubmatch(trimmed)
			stmts = append(stmts, Statement{
				kind:       StmtReference,
				SourceName: m[1],
				SourcePath: m[2],
				pos:        pos,
			})

		case reDefStart.MatchString(trimmed):
			m := reDefStart.FindStringSubmatch(trimmed)
			name := m[1]
			defPos := pos

			var headerLine string
			hasHeader := false
			var dataLines []string

			i++
			if i < len(lines) && reHeaderLine.MatchString(strings.TrimSpace(lines[i])) {
				headerLine = strings.TrimSpace(lines[i])
				hasHeader = true
				i++
			}

			closed := false
			for ; i < len(lines); i++ {
				if strings.TrimSpace(lines[i]) == "~" {
					closed = true
					break
				}

				if strings.TrimSpace(lines[i]) == "" {
					continue
				}

				dataLines = append(dataLines, lines[i])
			}

			if !closed {
				return stmts, warnings, token.NewPosError(token.NewNode(defPos, defPos), "definition block for "+name+" is never closed with ~")
			}

			stmts = append(stmts, Statement{
				kind:       StmtDefinition,
				Name:       name,
				HeaderLine: headerLine,
				HasHeader:  hasHeader,
				DataLines:  dataLines,
				pos:        defPos,
			})

		default:
			return stmts, warnings, token.NewPosError(token.NewNode(pos, pos), "unrecognised statement: "+trimmed)
		}
	}

	return stmts, warnings, nil
}
