// Package smt2 reads and writes SMT-LIB logic and theory definition files.
//
// It is the adapter between the on-disk `(logic ...)` / `(theory ...)`
// records and the domain types: ParseLogic/ParseTheory decode source text,
// FormatLogic/FormatTheory render it canonically, and Loader binds both to
// the filesystem layout of a corpus.
package smt2

import (
	"fmt"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/sexp"
)

// ParseLogic parses src as a single `(logic NAME :attr value ...)` form.
// The path is used for error context only, like go/parser's filename; it
// may be empty.
//
// Unrecognized attributes are not errors: they are preserved verbatim in
// the record's Extras and reported as warnings, so files written against a
// newer SMT-LIB release still load.
func ParseLogic(path string, src []byte) (domain.Logic, []domain.Warning, error) {
	name, attrs, err := parseRecord(path, src, "logic")
	if err != nil {
		return domain.Logic{}, nil, err
	}

	l := domain.Logic{Name: name}
	var warns []domain.Warning

	seen := map[string]bool{}
	for _, a := range attrs {
		key := a.key.Text
		if seen[key] {
			return domain.Logic{}, nil, malformedf(path, a.key.Pos, "duplicate attribute :%s", key)
		}
		seen[key] = true

		var ferr error
		switch key {
		case "smt-lib-version":
			l.SMTLibVersion, ferr = scalarValue(path, a)
		case "smt-lib-release":
			l.SMTLibRelease, ferr = scalarValue(path, a)
		case "written-by":
			l.WrittenBy, ferr = scalarValue(path, a)
		case "date":
			l.Date, ferr = scalarValue(path, a)
		case "last-updated":
			l.LastUpdated, ferr = scalarValue(path, a)
		case "update-history":
			l.UpdateHistory, ferr = scalarValue(path, a)
		case "theories":
			l.Theories, ferr = symbolListValue(path, a)
		case "language":
			l.Language, ferr = scalarValue(path, a)
		case "extensions":
			l.Extensions, ferr = scalarValue(path, a)
		case "values":
			l.Values, ferr = scalarValue(path, a)
		case "notes":
			l.Notes, ferr = scalarValue(path, a)
		default:
			l.Extras = append(l.Extras, domain.Attr{Key: key, Raw: rawValue(a)})
			warns = append(warns, unknownKey(key))
		}
		if ferr != nil {
			return domain.Logic{}, nil, ferr
		}
	}

	return l, warns, nil
}

// ParseTheory parses src as a single `(theory NAME :attr value ...)` form.
// Same contract as ParseLogic.
func ParseTheory(path string, src []byte) (domain.Theory, []domain.Warning, error) {
	name, attrs, err := parseRecord(path, src, "theory")
	if err != nil {
		return domain.Theory{}, nil, err
	}

	t := domain.Theory{Name: name}
	var warns []domain.Warning

	seen := map[string]bool{}
	for _, a := range attrs {
		key := a.key.Text
		if seen[key] {
			return domain.Theory{}, nil, malformedf(path, a.key.Pos, "duplicate attribute :%s", key)
		}
		seen[key] = true

		var ferr error
		switch key {
		case "smt-lib-version":
			t.SMTLibVersion, ferr = scalarValue(path, a)
		case "smt-lib-release":
			t.SMTLibRelease, ferr = scalarValue(path, a)
		case "written-by":
			t.WrittenBy, ferr = scalarValue(path, a)
		case "date":
			t.Date, ferr = scalarValue(path, a)
		case "last-updated":
			t.LastUpdated, ferr = scalarValue(path, a)
		case "update-history":
			t.UpdateHistory, ferr = scalarValue(path, a)
		case "sorts":
			t.Sorts, ferr = listValue(path, a)
		case "funs":
			t.Funs, ferr = listValue(path, a)
		case "sorts-description":
			t.SortsDescription, ferr = scalarValue(path, a)
		case "funs-description":
			t.FunsDescription, ferr = scalarValue(path, a)
		case "definition":
			t.Definition, ferr = scalarValue(path, a)
		case "values":
			t.Values, ferr = scalarValue(path, a)
		case "notes":
			t.Notes, ferr = scalarValue(path, a)
		default:
			t.Extras = append(t.Extras, domain.Attr{Key: key, Raw: rawValue(a)})
			warns = append(warns, unknownKey(key))
		}
		if ferr != nil {
			return domain.Theory{}, nil, ferr
		}
	}

	return t, warns, nil
}

// attr is one `:key value` pair from a record body. val is nil for a
// valueless attribute.
type attr struct {
	key sexp.Node
	val *sexp.Node
}

// DetectKind reports whether src holds a logic or a theory record by
// inspecting its head symbol. Callers resolving a bare file path use it to
// pick ParseLogic or ParseTheory.
func DetectKind(path string, src []byte) (domain.RecordKind, error) {
	form, err := sexp.Parse(src)
	if err != nil {
		return "", &domain.OpError{
			Op:   "smt2.parse",
			Kind: domain.KindMalformed,
			Path: path,
			Err:  err,
		}
	}
	if form.Kind == sexp.KindList && len(form.List) > 0 && form.List[0].Kind == sexp.KindSymbol {
		switch form.List[0].Text {
		case "logic":
			return domain.RecordLogic, nil
		case "theory":
			return domain.RecordTheory, nil
		}
	}
	return "", malformedf(path, form.Pos, "record must begin with %q or %q", "logic", "theory")
}

// parseRecord checks the record envelope shared by logics and theories:
// exactly one top-level list, the expected head symbol, a symbol name, and
// a body of keyword-led attributes.
func parseRecord(path string, src []byte, head string) (string, []attr, error) {
	form, err := sexp.Parse(src)
	if err != nil {
		return "", nil, &domain.OpError{
			Op:   "smt2.parse",
			Kind: domain.KindMalformed,
			Path: path,
			Err:  err,
		}
	}

	if form.Kind != sexp.KindList {
		return "", nil, malformedf(path, form.Pos, "top-level form must be a parenthesized %s record", head)
	}
	if len(form.List) == 0 || form.List[0].Kind != sexp.KindSymbol || form.List[0].Text != head {
		pos := form.Pos
		if len(form.List) > 0 {
			pos = form.List[0].Pos
		}
		return "", nil, malformedf(path, pos, "record must begin with %q", head)
	}

	if len(form.List) < 2 || form.List[1].Kind == sexp.KindKeyword {
		pos := form.Pos
		if len(form.List) >= 2 {
			pos = form.List[1].Pos
		}
		return "", nil, malformedf(path, pos, "missing required field: name")
	}
	nameNode := form.List[1]
	if nameNode.Kind != sexp.KindSymbol || nameNode.Text == "" {
		return "", nil, malformedf(path, nameNode.Pos, "%s name must be a symbol, got %s", head, nameNode.Kind)
	}

	rest := form.List[2:]
	var attrs []attr
	for i := 0; i < len(rest); i++ {
		k := rest[i]
		if k.Kind != sexp.KindKeyword {
			return "", nil, malformedf(path, k.Pos, "expected attribute keyword, got %s", k.Kind)
		}
		a := attr{key: k}
		if i+1 < len(rest) && rest[i+1].Kind != sexp.KindKeyword {
			a.val = &rest[i+1]
			i++
		}
		attrs = append(attrs, a)
	}

	return nameNode.Text, attrs, nil
}

// scalarValue accepts a string literal or a bare numeral/decimal and
// returns its text. The real corpus writes `:smt-lib-version 2.6` unquoted
// and every prose field as a string.
func scalarValue(path string, a attr) (string, error) {
	if a.val == nil {
		return "", malformedf(path, a.key.Pos, "missing value for :%s", a.key.Text)
	}
	switch a.val.Kind {
	case sexp.KindString, sexp.KindNumeral, sexp.KindDecimal:
		return a.val.Text, nil
	default:
		return "", malformedf(path, a.val.Pos, "value for :%s must be a string, got %s", a.key.Text, a.val.Kind)
	}
}

// symbolListValue accepts a parenthesized list of symbols, e.g.
// `:theories (Ints Reals)`, preserving source order.
func symbolListValue(path string, a attr) ([]string, error) {
	if a.val == nil {
		return nil, malformedf(path, a.key.Pos, "missing value for :%s", a.key.Text)
	}
	if a.val.Kind != sexp.KindList {
		return nil, malformedf(path, a.val.Pos, "value for :%s must be a list of symbols, got %s", a.key.Text, a.val.Kind)
	}

	// An empty list parses to nil so the field round-trips as unset.
	var out []string
	for _, n := range a.val.List {
		if n.Kind != sexp.KindSymbol {
			return nil, malformedf(path, n.Pos, "value for :%s must be a list of symbols, got %s element", a.key.Text, n.Kind)
		}
		out = append(out, n.Text)
	}
	return out, nil
}

// listValue accepts any parenthesized list and returns its canonical text.
// Declaration bodies (:sorts, :funs) are carried as text, not interpreted.
func listValue(path string, a attr) (string, error) {
	if a.val == nil {
		return "", malformedf(path, a.key.Pos, "missing value for :%s", a.key.Text)
	}
	if a.val.Kind != sexp.KindList {
		return "", malformedf(path, a.val.Pos, "value for :%s must be a parenthesized list, got %s", a.key.Text, a.val.Kind)
	}
	return a.val.String(), nil
}

// rawValue renders an unrecognized attribute's value for Extras. Valueless
// attributes yield the empty string.
func rawValue(a attr) string {
	if a.val == nil {
		return ""
	}
	return a.val.String()
}

func unknownKey(key string) domain.Warning {
	return domain.Warning{
		Kind:    domain.WarnUnknownKey,
		Key:     key,
		Message: "unrecognized attribute, preserved as-is",
	}
}

func malformedf(path string, pos sexp.Pos, format string, args ...any) error {
	return &domain.OpError{
		Op:   "smt2.parse",
		Kind: domain.KindMalformed,
		Path: path,
		Err:  fmt.Errorf("%s: %s: %w", pos, fmt.Sprintf(format, args...), domain.ErrMalformed),
	}
}
