package fscorpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/infra/smt2"
)

func TestInitializer_Init_CreatesCorpusFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.CorpusSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "smtcat.yaml"))
	assertFileExists(t, filepath.Join(tmp, "logics", "QF_FF.smt2"))
	assertFileExists(t, filepath.Join(tmp, "theories", "FieldElements.smt2"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	if info, err := os.Stat(filepath.Join(tmp, ".smtcat", "logs")); err != nil || !info.IsDir() {
		t.Fatalf("expected .smtcat/logs dir, err=%v", err)
	}
	if info, err := os.Stat(filepath.Join(tmp, "docs")); err != nil || !info.IsDir() {
		t.Fatalf("expected docs dir, err=%v", err)
	}
}

func TestInitializer_Init_SeedsParseCleanly(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.CorpusSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	loader := smt2.NewLoader()

	logic, warns, err := loader.LoadLogic(filepath.Join(tmp, "logics", "QF_FF.smt2"))
	if err != nil {
		t.Fatalf("seeded logic does not load: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("seeded logic has warnings: %v", warns)
	}
	if logic.Name != "QF_FF" || len(logic.Theories) != 1 || logic.Theories[0] != "FieldElements" {
		t.Fatalf("unexpected seeded logic: %+v", logic)
	}

	theory, warns, err := loader.LoadTheory(filepath.Join(tmp, "theories", "FieldElements.smt2"))
	if err != nil {
		t.Fatalf("seeded theory does not load: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("seeded theory has warnings: %v", warns)
	}
	if theory.Name != "FieldElements" {
		t.Fatalf("unexpected seeded theory: %+v", theory)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "smtcat.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing smtcat.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.CorpusSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read smtcat.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected smtcat.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.CorpusSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read smtcat.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "smtcat:") {
		t.Fatalf("expected smtcat.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
