package pathlang

import (
	"testing"

	"github.com/rowscript/rowscript/value"
)

func TestUpdateField(t *testing.T) {
	table := value.NewTable("customers", []value.HeaderField{
		{Name: "id", TypeInfo: "index", HasTypeInfo: true, IsPrimaryKey: true},
		{Name: "name"},
	})
	_ = table.AddRow(value.Row{"id": value.Integer(1), "name": value.String("Ada")})

	root := value.Root{"customers": table}

	if err := Update(root, "customers{1}.name", "'Ada Lovelace'"); err != nil {
		t.Fatal(err)
	}

	got := table.Data.Idx["1"]["name"]
	if !got.Equal(value.String("Ada Lovelace")) {
		t.Fatalf("got %#v", got)
	}
}

func TestUpdateCoercesIntegerFromString(t *testing.T) {
	table := value.NewTable("customers", []value.HeaderField{
		{Name: "id", TypeInfo: "index", HasTypeInfo: true, IsPrimaryKey: true},
		{Name: "age"},
	})
	_ = table.AddRow(value.Row{"id": value.Integer(1), "age": value.Integer(30)})
	root := value.Root{"customers": table}

	if err := Update(root, "customers{1}.age", "31"); err != nil {
		t.Fatal(err)
	}

	got := table.Data.Idx["1"]["age"]
	if !got.Equal(value.Integer(31)) {
		t.Fatalf("got %#v", got)
	}
}

func TestUpdateTupleElementByIndex(t *testing.T) {
	table := value.NewTable("customers", []value.HeaderField{
		{Name: "id", TypeInfo: "index", HasTypeInfo: true, IsPrimaryKey: true},
		{Name: "tags"},
	})
	_ = table.AddRow(value.Row{"id": value.Integer(1), "tags": value.Tuple(value.String("a"), value.String("b"))})
	root := value.Root{"customers": table}

	if err := Update(root, "customers{1}.tags[1]", "'c'"); err != nil {
		t.Fatal(err)
	}

	got := table.Data.Idx["1"]["tags"]
	want := value.Tuple(value.String("a"), value.String("c"))
	if !got.Equal(want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestAddRow(t *testing.T) {
	table := value.NewTable("customers", []value.HeaderField{
		{Name: "id", TypeInfo: "index", HasTypeInfo: true, IsPrimaryKey: true},
		{Name: "name"},
	})
	root := value.Root{"customers": table}

	if err := Add(root, "customers"); err != nil {
		t.Fatal(err)
	}

	if table.Data.Len() != 1 {
		t.Fatalf("want 1 row after add, got %d", table.Data.Len())
	}
}

func TestUpdateMissingTableErrors(t *testing.T) {
	root := value.Root{}
	if err := Update(root, "customers{1}.name", "'x'"); err == nil {
		t.Fatal("expected error for missing table")
	}
}
