package tui

import (
	"errors"
	"testing"

	"github.com/trail-of-forks/smtcat/internal/domain"
)

func TestUserMessage_Nil(t *testing.T) {
	if got := userMessage(nil); got != "" {
		t.Errorf("expected empty message, got %q", got)
	}
}

func TestUserMessage_RecordNotFound(t *testing.T) {
	err := &domain.OpError{
		Op:   "smt2.load",
		Kind: domain.KindNotFound,
		Path: "logics/QF_FF.smt2",
		Err:  errors.New("no such file"),
	}
	if got := userMessage(err); got != "Record not found" {
		t.Errorf("expected record-not-found message, got %q", got)
	}
}

func TestUserMessage_CorpusNotFound(t *testing.T) {
	err := &domain.OpError{
		Op:   "corpusfinder.findroot",
		Kind: domain.KindNotFound,
		Err:  errors.New("no smtcat.yaml in any parent"),
	}
	if got := userMessage(err); got != "Corpus not found" {
		t.Errorf("expected corpus-not-found message, got %q", got)
	}
}

func TestUserMessage_MalformedWithPosition(t *testing.T) {
	err := &domain.OpError{
		Op:   "smt2.parse",
		Kind: domain.KindMalformed,
		Path: "/corpus/logics/QF_FF.smt2",
		Err:  errors.New("3:7: expected attribute keyword, got string"),
	}
	if got := userMessage(err); got != "Malformed record at QF_FF.smt2 line 3" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestUserMessage_MalformedWithoutPosition(t *testing.T) {
	err := &domain.OpError{
		Op:   "smt2.parse",
		Kind: domain.KindMalformed,
		Path: "/corpus/logics/QF_FF.smt2",
		Err:  errors.New("something odd"),
	}
	if got := userMessage(err); got != "Malformed record at QF_FF.smt2" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestUserMessage_InvalidConfigYAML(t *testing.T) {
	err := &domain.OpError{
		Op:   "corpusfinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: "/corpus/smtcat.yaml",
		Err:  errors.New("yaml: line 4: did not find expected key"),
	}
	if got := userMessage(err); got != "Invalid YAML at smtcat.yaml" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestUserMessage_PlainError(t *testing.T) {
	if got := userMessage(errors.New("boom")); got != "Unexpected error (see logs)" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestExtractLine(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"3:7: expected attribute keyword", "3"},
		{"12:1: unterminated string", "12"},
		{"no position here", ""},
	}
	for _, c := range cases {
		if got := extractLine(c.input); got != c.want {
			t.Errorf("extractLine(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
