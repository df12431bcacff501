package rowscript

import "testing"

func TestEndToEndBuildQueryUpdatePack(t *testing.T) {
	src := "customers:\n" +
		"/id:index/name/\n" +
		"1,'Ada'\n" +
		"2,'Grace'\n" +
		"~\n" +
		"#.customers{1}.name = 'Ada Lovelace'\n"

	root, _, warnings, err := Build("doc.rs", src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	v, ok := Query(*root, "customers{1}.name")
	if !ok {
		t.Fatal("expected to find customers{1}.name")
	}
	if v.Str != "Ada Lovelace" {
		t.Fatalf("got %q", v.Str)
	}

	out, err := Pack(*root, []string{"customers"})
	if err != nil {
		t.Fatal(err)
	}

	want := "customers:\n/id:index/name/\n1,'Ada Lovelace'\n2,Grace\n"
	if out != want {
		t.Fatalf("Pack() = %q, want %q", out, want)
	}

	root2, _, warnings2, err := Build("doc2.rs", out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings2) != 0 {
		t.Fatalf("unexpected warnings on reparse: %v", warnings2)
	}

	v2, ok := Query(*root2, "customers{1}.name")
	if !ok || v2.Str != "Ada Lovelace" {
		t.Fatalf("round-trip mismatch: %#v, %v", v2, ok)
	}
}
