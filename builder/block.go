package builder

import (
	"github.com/rowscript/rowscript/lex"
	"github.com/rowscript/rowscript/value"
)

// tableFromDefinition turns a parsed Definition statement into a
// Table. A block with a header line is parsed eagerly into rows under
// the discipline its headers select; a block with no header line is
// held as RawLines, to be resolved later against an existing shell's
// headers (a CopyStructure target) during the merge phase.
func tableFromDefinition(stmt Statement) (*value.Table, []Warning) {
	if !stmt.HasHeader {
		return &value.Table{Name: stmt.Name, Data: value.NewRawLines(stmt.DataLines)}, nil
	}

	headers := parseHeaderLine(stmt.HeaderLine)
	table := value.NewTable(stmt.Name, headers)

	var warnings []Warning
	for _, line := range stmt.DataLines {
		row, warns := parseDataLine(table, line)
		warnings = append(warnings, warns...)

		if err := table.AddRow(row); err != nil {
			warnings = append(warnings, Warning{Pos: stmt.Pos(), Message: err.Error()})
		}
	}

	return table, warnings
}

// parseDataLine parses one data line against table's headers, parsing
// any columns the line omits from empty text (which gives String("")).
func parseDataLine(table *value.Table, line string) (value.Row, []Warning) {
	fields := lex.SplitDataLine(line)

	row := make(value.Row, len(table.Headers))
	var warnings []Warning

	for i, h := range table.Headers {
		raw := ""
		if i < len(fields) {
			raw = fields[i]
		}

		v, warn := lex.ParseValue(raw, h.TypeInfo, h.HasTypeInfo)
		row[h.Name] = v

		if warn != nil {
			warnings = append(warnings, Warning{Message: warn.Message})
		}
	}

	return row, warnings
}

// reparseRawLines promotes a RawLines table's raw_lines into rows
// using headers supplied from elsewhere (the existing shell's
// headers), per the CopyStructure-then-Definition merge rule.
func reparseRawLines(name string, headers []value.HeaderField, lines []string) (*value.Table, []Warning) {
	table := value.NewTable(name, headers)

	var warnings []Warning
	for _, line := range lines {
		row, warns := parseDataLine(table, line)
		warnings = append(warnings, warns...)

		if err := table.AddRow(row); err != nil {
			warnings = append(warnings, Warning{Message: err.Error()})
		}
	}

	return table, warnings
}
