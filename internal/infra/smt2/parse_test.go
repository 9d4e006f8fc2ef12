package smt2

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/trail-of-forks/smtcat/internal/domain"
)

const qfffSource = `(logic QF_FF

 :smt-lib-version 2.6
 :smt-lib-release "2023-04-01"
 :written-by "Cesare Tinelli"
 :date "2023-06-11"

 :theories (FieldElements)

 :language
 "Closed quantifier-free formulas built over an arbitrary expansion of the
  FieldElements signature with free constant symbols."
)
`

const fieldElementsSource = `(theory FieldElements

 :smt-lib-version 2.6
 :smt-lib-release "2023-04-01"
 :written-by "Alex Ozdemir"
 :date "2023-02-01"

 :sorts ((FiniteField 1))

 :funs ((ff.add (FiniteField FiniteField FiniteField))
        (ff.mul (FiniteField FiniteField FiniteField)))

 :definition
 "For every prime p, the instance with order p is the theory of the finite
  field with p elements. Sums and products are taken modulo p."
)
`

func TestParseLogic_QFFF(t *testing.T) {
	l, warns, err := ParseLogic("QF_FF.smt2", []byte(qfffSource))
	if err != nil {
		t.Fatalf("ParseLogic error: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("expected no warnings, got=%v", warns)
	}

	if l.Name != "QF_FF" {
		t.Fatalf("expected name=QF_FF, got=%s", l.Name)
	}
	if l.SMTLibVersion != "2.6" {
		t.Fatalf("expected version=2.6, got=%q", l.SMTLibVersion)
	}
	if l.WrittenBy != "Cesare Tinelli" {
		t.Fatalf("expected written-by=Cesare Tinelli, got=%q", l.WrittenBy)
	}
	if len(l.Theories) != 1 || l.Theories[0] != "FieldElements" {
		t.Fatalf("expected theories=[FieldElements], got=%v", l.Theories)
	}
	if !strings.Contains(l.Language, "FieldElements signature") {
		t.Fatalf("language not decoded, got=%q", l.Language)
	}

	if s := l.Summary(); !strings.Contains(s, "QF_FF") {
		t.Fatalf("expected summary to mention QF_FF, got=%q", s)
	}
}

func TestParseLogic_TheoriesOrderPreserved(t *testing.T) {
	src := []byte(`(logic L :theories (Reals Ints Core))`)

	l, _, err := ParseLogic("", src)
	if err != nil {
		t.Fatalf("ParseLogic error: %v", err)
	}

	want := []string{"Reals", "Ints", "Core"}
	if !reflect.DeepEqual(l.Theories, want) {
		t.Fatalf("expected theories=%v, got=%v", want, l.Theories)
	}
}

func TestParseLogic_UnknownKeyPreserved(t *testing.T) {
	src := []byte(`(logic L :foo "bar" :theories (Core))`)

	l, warns, err := ParseLogic("l.smt2", src)
	if err != nil {
		t.Fatalf("expected unknown key to load, got error: %v", err)
	}

	if len(warns) != 1 {
		t.Fatalf("expected 1 warning, got=%d (%v)", len(warns), warns)
	}
	if warns[0].Kind != domain.WarnUnknownKey || warns[0].Key != "foo" {
		t.Fatalf("unexpected warning: %+v", warns[0])
	}

	raw, ok := l.Extra("foo")
	if !ok {
		t.Fatalf("expected :foo preserved in extras")
	}
	if raw != `"bar"` {
		t.Fatalf("expected raw=%q, got=%q", `"bar"`, raw)
	}
}

func TestParseLogic_ValuelessUnknownKey(t *testing.T) {
	src := []byte(`(logic L :experimental :theories (Core))`)

	l, warns, err := ParseLogic("", src)
	if err != nil {
		t.Fatalf("ParseLogic error: %v", err)
	}
	if len(warns) != 1 || warns[0].Key != "experimental" {
		t.Fatalf("expected warning for :experimental, got=%v", warns)
	}

	raw, ok := l.Extra("experimental")
	if !ok || raw != "" {
		t.Fatalf("expected valueless extra, got ok=%v raw=%q", ok, raw)
	}
}

func TestParseLogic_MissingName(t *testing.T) {
	for _, src := range []string{
		`(logic)`,
		`(logic :theories (Core))`,
	} {
		_, _, err := ParseLogic("bad.smt2", []byte(src))
		if err == nil {
			t.Fatalf("expected error for %q", src)
		}
		if !domain.IsKind(err, domain.KindMalformed) {
			t.Fatalf("expected malformed kind, got=%v", err)
		}
		if !errors.Is(err, domain.ErrMalformed) {
			t.Fatalf("expected ErrMalformed in chain, got=%v", err)
		}
		if !strings.Contains(err.Error(), "missing required field: name") {
			t.Fatalf("expected name diagnostic, got=%v", err)
		}
	}
}

func TestParseLogic_Malformed(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"not a list", `QF_FF`},
		{"wrong head", `(theory T)`},
		{"name not a symbol", `(logic "QF_FF")`},
		{"unbalanced parens", `(logic A :theories (Core)`},
		{"trailing form", "(logic A)\n(logic B)"},
		{"duplicate attribute", `(logic A :date "x" :date "y")`},
		{"recognized key without value", `(logic A :theories)`},
		{"theories not a list", `(logic A :theories Core)`},
		{"theories element not a symbol", `(logic A :theories ("Core"))`},
		{"scalar value wrong shape", `(logic A :written-by (x))`},
		{"stray value", `(logic A (x))`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := ParseLogic("bad.smt2", []byte(c.src))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindMalformed) {
				t.Fatalf("expected malformed kind, got=%v", err)
			}
			if !strings.Contains(err.Error(), "bad.smt2") {
				t.Fatalf("expected path in error, got=%v", err)
			}
		})
	}
}

func TestParseLogic_CommentsIgnored(t *testing.T) {
	src := []byte(`; corpus header
(logic L ; inline
 :theories (Core))
`)

	l, _, err := ParseLogic("", src)
	if err != nil {
		t.Fatalf("ParseLogic error: %v", err)
	}
	if l.Name != "L" {
		t.Fatalf("expected name=L, got=%s", l.Name)
	}
}

func TestParseTheory_FieldElements(t *testing.T) {
	th, warns, err := ParseTheory("FieldElements.smt2", []byte(fieldElementsSource))
	if err != nil {
		t.Fatalf("ParseTheory error: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("expected no warnings, got=%v", warns)
	}

	if th.Name != "FieldElements" {
		t.Fatalf("expected name=FieldElements, got=%s", th.Name)
	}
	if th.Sorts != "((FiniteField 1))" {
		t.Fatalf("expected canonical sorts text, got=%q", th.Sorts)
	}
	if !strings.Contains(th.Funs, "ff.add") || !strings.Contains(th.Funs, "ff.mul") {
		t.Fatalf("funs not carried, got=%q", th.Funs)
	}
	if !strings.Contains(th.Definition, "finite") {
		t.Fatalf("definition not decoded, got=%q", th.Definition)
	}

	s := th.Summary()
	if !strings.Contains(s, "FieldElements") || strings.Contains(s, "modulo") {
		t.Fatalf("expected first-sentence summary, got=%q", s)
	}
}

func TestParseTheory_Malformed(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"wrong head", `(logic L)`},
		{"sorts not a list", `(theory T :sorts "Bool")`},
		{"funs without value", `(theory T :funs)`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := ParseTheory("bad.smt2", []byte(c.src))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindMalformed) {
				t.Fatalf("expected malformed kind, got=%v", err)
			}
		})
	}
}

func TestDetectKind(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want domain.RecordKind
	}{
		{"logic", `(logic QF_FF :theories (FieldElements))`, domain.RecordLogic},
		{"theory", `(theory Core)`, domain.RecordTheory},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DetectKind("rec.smt2", []byte(c.src))
			if err != nil {
				t.Fatalf("DetectKind error: %v", err)
			}
			if got != c.want {
				t.Fatalf("DetectKind = %s, want %s", got, c.want)
			}
		})
	}
}

func TestDetectKind_Rejects(t *testing.T) {
	for _, src := range []string{
		`(set-logic QF_FF)`,
		`QF_FF`,
		`(`,
	} {
		if _, err := DetectKind("rec.smt2", []byte(src)); err == nil {
			t.Fatalf("expected error for %q", src)
		}
	}
}
