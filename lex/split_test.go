package lex

import (
	"reflect"
	"testing"
)

func TestSplitTopLevelCommas(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "1,2,3", []string{"1", "2", "3"}},
		{"quoted-comma", "'a,b',2", []string{"'a,b'", "2"}},
		{"paren-comma", "(1,2),3", []string{"(1,2)", "3"}},
		{"doubled-quote", "'it''s',2", []string{"'it''s'", "2"}},
		{"single", "only", []string{"only"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SplitTopLevelCommas(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("SplitTopLevelCommas(%q) = %#v, want %#v", c.in, got, c.want)
			}
		})
	}
}

func TestSplitTupleElements(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single-trailing-comma", "1,", []string{"1"}},
		{"two", "1,2", []string{"1", "2"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SplitTupleElements(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("SplitTupleElements(%q) = %#v, want %#v", c.in, got, c.want)
			}
		})
	}
}

func TestSplitDataLinePadsNothingItself(t *testing.T) {
	got := SplitDataLine(" 1 , 2 ")
	want := []string{"1", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitDataLine = %#v, want %#v", got, want)
	}
}
