package domain

import (
	"strings"
	"testing"
)

func TestTheorySummary(t *testing.T) {
	th := Theory{
		Name:          "FieldElements",
		SMTLibVersion: "2.6",
		Sorts:         "((FiniteField 0))",
		Definition:    "The theory of finite fields. Also known as Galois fields.",
	}

	s := th.Summary()
	if !strings.Contains(s, "FieldElements") {
		t.Fatalf("expected name in summary, got %q", s)
	}
	if !strings.Contains(s, "SMT-LIB 2.6") {
		t.Errorf("expected version in summary, got %q", s)
	}
	if strings.Contains(s, "Galois") {
		t.Errorf("expected only the first sentence, got %q", s)
	}
}

func TestTheoryExtra(t *testing.T) {
	th := Theory{
		Name:   "Core",
		Extras: []Attr{{Key: "citation", Raw: `"..."`}},
	}
	if _, ok := th.Extra("citation"); !ok {
		t.Fatal("expected preserved extra to be retrievable")
	}
	if _, ok := th.Extra("other"); ok {
		t.Fatal("expected miss for absent key")
	}
}
