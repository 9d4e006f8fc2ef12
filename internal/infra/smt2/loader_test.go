package smt2

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trail-of-forks/smtcat/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadLogic_File(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "QF_FF.smt2")
	writeFile(t, p, qfffSource)

	l := NewLoader()
	logic, warns, err := l.LoadLogic(p)
	if err != nil {
		t.Fatalf("LoadLogic error: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("expected no warnings, got=%v", warns)
	}
	if logic.Name != "QF_FF" {
		t.Fatalf("expected name=QF_FF, got=%s", logic.Name)
	}
}

func TestLoadLogic_Missing(t *testing.T) {
	l := NewLoader()
	_, _, err := l.LoadLogic(filepath.Join(t.TempDir(), "nope.smt2"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got=%v", err)
	}
}

func TestLoadLogic_WarningsPropagate(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "l.smt2")
	writeFile(t, p, `(logic L :foo "bar")`)

	l := NewLoader()
	_, warns, err := l.LoadLogic(p)
	if err != nil {
		t.Fatalf("LoadLogic error: %v", err)
	}
	if len(warns) != 1 || warns[0].Key != "foo" {
		t.Fatalf("expected :foo warning, got=%v", warns)
	}
}

func TestListLogics(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "logics")

	writeFile(t, filepath.Join(dir, "zzz.smt2"), `(logic AAA :theories (Core))`)
	writeFile(t, filepath.Join(dir, "QF_FF.smt2"), qfffSource)
	writeFile(t, filepath.Join(dir, "broken.smt2"), `(logic`)
	writeFile(t, filepath.Join(dir, "README.md"), "not a record")

	l := NewLoader()
	refs, err := l.ListLogics(root)
	if err != nil {
		t.Fatalf("ListLogics error: %v", err)
	}

	if len(refs) != 3 {
		t.Fatalf("expected 3 refs, got=%d (%v)", len(refs), refs)
	}

	// Sorted by declared name; broken files fall back to the filename stem.
	wantNames := []string{"AAA", "QF_FF", "broken"}
	for i, want := range wantNames {
		if refs[i].Name != want {
			t.Fatalf("expected refs[%d].Name=%s, got=%s", i, want, refs[i].Name)
		}
	}
	if filepath.Base(refs[0].Path) != "zzz.smt2" {
		t.Fatalf("expected AAA to come from zzz.smt2, got=%s", refs[0].Path)
	}
}

func TestListLogics_MissingDir(t *testing.T) {
	l := NewLoader()
	_, err := l.ListLogics(t.TempDir())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got=%v", err)
	}
}

func TestListTheories_CustomDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "defs", "FieldElements.smt2"), fieldElementsSource)

	l := NewLoader(WithTheoriesDir("defs"))
	refs, err := l.ListTheories(root)
	if err != nil {
		t.Fatalf("ListTheories error: %v", err)
	}
	if len(refs) != 1 || refs[0].Name != "FieldElements" {
		t.Fatalf("expected [FieldElements], got=%v", refs)
	}
}
