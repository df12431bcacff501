package pathlang

import (
	"testing"

	"github.com/rowscript/rowscript/value"
)

func indexedCustomers() *value.Table {
	t := value.NewTable("customers", []value.HeaderField{
		{Name: "id", TypeInfo: "index", HasTypeInfo: true, IsPrimaryKey: true},
		{Name: "name"},
		{Name: "tags"},
	})
	_ = t.AddRow(value.Row{"id": value.Integer(1), "name": value.String("Ada"), "tags": value.Tuple(value.String("a"), value.String("b"))})
	return t
}

func TestQueryIndexedField(t *testing.T) {
	root := value.Root{"customers": indexedCustomers()}

	v, ok := Query(root, "customers{1}.name")
	if !ok || !v.Equal(value.String("Ada")) {
		t.Fatalf("Query = %#v, %v", v, ok)
	}
}

func TestQueryTupleElement(t *testing.T) {
	root := value.Root{"customers": indexedCustomers()}

	v, ok := Query(root, "customers{1}.tags[0]")
	if !ok || !v.Equal(value.String("a")) {
		t.Fatalf("Query tuple elem = %#v, %v", v, ok)
	}
}

func TestQueryReferenceDereference(t *testing.T) {
	orders := value.NewTable("orders", []value.HeaderField{
		{Name: "id", TypeInfo: "index", HasTypeInfo: true, IsPrimaryKey: true},
		{Name: "customer", TypeInfo: "customers", HasTypeInfo: true},
	})
	_ = orders.AddRow(value.Row{"id": value.Integer(1), "customer": value.Reference("customers", value.Integer(1))})

	root := value.Root{"customers": indexedCustomers(), "orders": orders}

	v, ok := Query(root, "orders{1}.customer.name")
	if !ok || !v.Equal(value.String("Ada")) {
		t.Fatalf("Query through reference = %#v, %v", v, ok)
	}
}

func TestQueryMissingKey(t *testing.T) {
	root := value.Root{"customers": indexedCustomers()}

	if _, ok := Query(root, "customers{99}.name"); ok {
		t.Fatal("expected not-found for missing key")
	}
}

func TestQuerySequentialBareTable(t *testing.T) {
	single := value.NewTable("config", []value.HeaderField{{Name: "debug"}})
	_ = single.AddRow(value.Row{"debug": value.String("true")})

	root := value.Root{"config": single}

	v, ok := Query(root, "config.debug")
	if !ok || !v.Equal(value.String("true")) {
		t.Fatalf("Query bare sequential table = %#v, %v", v, ok)
	}
}

func TestQuerySequentialBareTableMultiRowDefaultsToFirst(t *testing.T) {
	user := value.NewTable("user", []value.HeaderField{{Name: "name"}})
	_ = user.AddRow(value.Row{"name": value.String("alice")})
	_ = user.AddRow(value.Row{"name": value.String("bob")})

	root := value.Root{"user": user}

	v, ok := Query(root, "user.name")
	if !ok || !v.Equal(value.String("alice")) {
		t.Fatalf("Query bare multi-row sequential table = %#v, %v", v, ok)
	}
}
