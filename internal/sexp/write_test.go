package sexp

import "testing"

func TestString_RoundTrip(t *testing.T) {
	cases := []string{
		"QF_FF",
		"(logic QF_FF :theories (FieldElements))",
		`(theory Core :sorts ((Bool 0)) :funs ((true Bool) (not Bool Bool)))`,
		`"a string with ""quotes"" inside"`,
		"(x 2.6 42 #xFF #b01)",
		"|quoted symbol|",
	}

	for _, src := range cases {
		n, err := Parse([]byte(src))
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", src, err)
		}

		again, err := Parse([]byte(n.String()))
		if err != nil {
			t.Fatalf("reparse of %q error: %v", n.String(), err)
		}
		if !equalNodes(n, again) {
			t.Errorf("round trip changed %q -> %q", src, n.String())
		}
	}
}

func equalNodes(a, b Node) bool {
	if a.Kind != b.Kind || a.Text != b.Text || len(a.List) != len(b.List) {
		return false
	}
	for i := range a.List {
		if !equalNodes(a.List[i], b.List[i]) {
			return false
		}
	}
	return true
}

func TestQuoteString(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"plain", `"plain"`},
		{`has "quotes"`, `"has ""quotes"""`},
		{"", `""`},
	}
	for _, c := range cases {
		if got := QuoteString(c.input); got != c.want {
			t.Errorf("QuoteString(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestIsSimpleSymbol(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"QF_FF", true},
		{"ff.add", true},
		{"2abc", false},
		{"", false},
		{"with space", false},
		{"~!@$%^&*_-+=<>.?/", true},
	}
	for _, c := range cases {
		if got := IsSimpleSymbol(c.input); got != c.want {
			t.Errorf("IsSimpleSymbol(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2.6", true},
		{"42", true},
		{"2.6.1", false},
		{".5", false},
		{"5.", false},
		{"2017-11-24", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsNumeric(c.input); got != c.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}
