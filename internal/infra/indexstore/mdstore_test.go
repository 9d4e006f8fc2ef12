package indexstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/trail-of-forks/smtcat/internal/domain"
)

func TestSaveIndex_WritesMarkdown(t *testing.T) {
	tmp := t.TempDir()

	idx := domain.CorpusIndex{
		Root:        tmp,
		GeneratedAt: time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC),
		Logics: []domain.IndexEntry{
			{
				Name:    "QF_FF",
				Path:    "logics/QF_FF.smt2",
				Summary: "QF_FF (SMT-LIB 2.6; theories: FieldElements): Closed quantifier-free formulas.",
			},
		},
		Theories: []domain.IndexEntry{
			{
				Name:    "FieldElements",
				Path:    "theories/FieldElements.smt2",
				Summary: "FieldElements (SMT-LIB 2.6): The theory of finite fields.",
			},
		},
	}

	store := NewMDStore(tmp, domain.DefaultConfig())
	path, err := store.SaveIndex(idx)
	if err != nil {
		t.Fatalf("SaveIndex error: %v", err)
	}

	want := filepath.Join(tmp, "docs", "index.md")
	if path != want {
		t.Fatalf("expected path=%s, got=%s", want, path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	s := string(b)

	for _, w := range []string{
		"# Corpus index",
		"1 logics and 1 theories",
		"## Logics",
		"[QF_FF](../logics/QF_FF.smt2)",
		"(SMT-LIB 2.6; theories: FieldElements)",
		"## Theories",
		"[FieldElements](../theories/FieldElements.smt2)",
	} {
		if !strings.Contains(s, w) {
			t.Fatalf("expected index to contain %q, got:\n%s", w, s)
		}
	}

	if strings.Contains(s, "QF_FF QF_FF") {
		t.Fatalf("expected name not repeated, got:\n%s", s)
	}
}

func TestSaveIndex_EmptySectionsOmitted(t *testing.T) {
	tmp := t.TempDir()

	store := NewMDStore(tmp, domain.DefaultConfig(), WithNow(func() time.Time {
		return time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	}))

	path, err := store.SaveIndex(domain.CorpusIndex{Root: tmp})
	if err != nil {
		t.Fatalf("SaveIndex error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	s := string(b)

	if strings.Contains(s, "## Logics") || strings.Contains(s, "## Theories") {
		t.Fatalf("expected no sections for empty corpus, got:\n%s", s)
	}
	if !strings.Contains(s, "0 logics and 0 theories") {
		t.Fatalf("expected counts line, got:\n%s", s)
	}
}

func TestSaveIndex_CustomDocsDir(t *testing.T) {
	tmp := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.Paths.DocsDir = "site"

	store := NewMDStore(tmp, cfg)
	path, err := store.SaveIndex(domain.CorpusIndex{Root: tmp})
	if err != nil {
		t.Fatalf("SaveIndex error: %v", err)
	}

	if want := filepath.Join(tmp, "site", "index.md"); path != want {
		t.Fatalf("expected path=%s, got=%s", want, path)
	}

	if _, err := os.Stat(filepath.Join(tmp, "site", "index.md.tmp")); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file cleaned up, stat err=%v", err)
	}
}
