package value

import "fmt"

// AddRow appends row to the table's data under its discipline,
// mirroring the original add_row dispatch: Sequential appends in
// order, setting a sindex primary key to the row's 0-based position;
// Indexed keys by the primary key field's canonical key, rejecting a
// key that already holds a row; GroupedIndexed keys the same way but
// appends to the group; RawLines cannot accept rows.
func (t *Table) AddRow(row Row) error {
	switch t.Data.Kind {
	case Sequential:
		if t.PrimaryKeyFieldName != "" {
			row[t.PrimaryKeyFieldName] = Integer(int64(len(t.Data.Seq)))
		}
		t.Data.Seq = append(t.Data.Seq, row)
		return nil

	case Indexed:
		key, err := t.rowKey(row)
		if err != nil {
			return err
		}
		if _, exists := t.Data.Idx[key]; exists {
			return fmt.Errorf("table %q already has a row keyed %q; index discipline rejects duplicates", t.Name, key)
		}
		t.Data.Idx[key] = row
		return nil

	case GroupedIndexed:
		key, err := t.rowKey(row)
		if err != nil {
			return err
		}
		t.Data.GIdx[key] = append(t.Data.GIdx[key], row)
		return nil

	default:
		return fmt.Errorf("table %q holds unparsed raw lines and cannot accept rows", t.Name)
	}
}

func (t *Table) rowKey(row Row) (string, error) {
	pkVal, ok := row[t.PrimaryKeyFieldName]
	if !ok {
		return "", fmt.Errorf("table %q row is missing its primary key field %q", t.Name, t.PrimaryKeyFieldName)
	}

	key, ok := CanonicalKey(pkVal)
	if !ok {
		return "", fmt.Errorf("table %q primary key field %q holds a %s value, which cannot form a canonical key", t.Name, t.PrimaryKeyFieldName, pkVal.TypeName())
	}

	return key, nil
}
