package lex

import (
	"testing"

	"github.com/rowscript/rowscript/value"
)

func TestParseValueFallbackCascade(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want value.Value
	}{
		{"empty-is-empty-string", "", value.String("")},
		{"bare-integer", "42", value.Integer(42)},
		{"bare-boolean-kept-as-string", "true", value.String("true")},
		{"quoted-string", "'hello'", value.String("hello")},
		{"doubled-quote-unescape", "'it''s'", value.String("it's")},
		{"bare-string", "hello", value.String("hello")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, _ := ParseValue(c.raw, "", false)
			if !got.Equal(c.want) {
				t.Errorf("ParseValue(%q) = %#v, want %#v", c.raw, got, c.want)
			}
		})
	}
}

func TestParseValueTypeHints(t *testing.T) {
	v, warn := ParseValue("7", "integer", true)
	if !v.Equal(value.Integer(7)) || warn != nil {
		t.Errorf("integer hint: got %#v, warn %v", v, warn)
	}

	v, warn = ParseValue("nope", "integer", true)
	if !v.Equal(value.String("nope")) || warn == nil {
		t.Errorf("bad integer hint should warn and fall back to string, got %#v, warn %v", v, warn)
	}
}

func TestParseValueTuple(t *testing.T) {
	v, _ := ParseValue("(1,2,3)", "", false)
	want := value.Tuple(value.Integer(1), value.Integer(2), value.Integer(3))
	if !v.Equal(want) {
		t.Errorf("tuple parse = %#v, want %#v", v, want)
	}

	v, _ = ParseValue("()", "", false)
	if !v.Equal(value.Tuple()) {
		t.Errorf("empty tuple parse = %#v", v)
	}

	v, _ = ParseValue("(1,)", "", false)
	if !v.Equal(value.Tuple(value.Integer(1))) {
		t.Errorf("single-element tuple parse = %#v", v)
	}
}

func TestParseValueReference(t *testing.T) {
	v, _ := ParseValue("(7)", "customers", true)
	want := value.Reference("customers", value.Integer(7))
	if !v.Equal(want) {
		t.Errorf("reference parse = %#v, want %#v", v, want)
	}
}

func TestParseValueBareReference(t *testing.T) {
	v, _ := ParseValue("s1", "sys", true)
	want := value.Reference("sys", value.String("s1"))
	if !v.Equal(want) {
		t.Errorf("bare reference parse = %#v, want %#v", v, want)
	}
}

func TestParseValueNullLiteral(t *testing.T) {
	v, _ := ParseValue("null", "", false)
	if !v.Equal(value.Null) {
		t.Errorf("null literal = %#v, want Null", v)
	}

	v, _ = ParseValue("NULL", "", false)
	if !v.Equal(value.Null) {
		t.Errorf("NULL literal = %#v, want Null", v)
	}

	v, _ = ParseValue("null", "string", true)
	if !v.Equal(value.String("null")) {
		t.Errorf("string-hinted null literal = %#v, want String(\"null\")", v)
	}
}
