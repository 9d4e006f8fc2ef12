package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/trail-of-forks/smtcat/internal/infra/smt2"
)

func TestExportCatalog_JSONShape(t *testing.T) {
	root := seedCorpus(t)

	loader := smt2.NewLoader()
	uc := NewExportCatalog(loader, loader)

	b, err := uc.Execute(context.Background(), root, "")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	var doc struct {
		Root   string `json:"root"`
		Logics []struct {
			Name     string   `json:"name"`
			Path     string   `json:"path"`
			Theories []string `json:"theories"`
			Summary  string   `json:"summary"`
		} `json:"logics"`
		Theories []struct {
			Name  string `json:"name"`
			Sorts string `json:"sorts"`
		} `json:"theories"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}

	if doc.Root != root {
		t.Fatalf("expected root=%s, got=%s", root, doc.Root)
	}
	if len(doc.Logics) != 1 || doc.Logics[0].Name != "QF_FF" {
		t.Fatalf("expected QF_FF export, got=%+v", doc.Logics)
	}
	if doc.Logics[0].Path != "logics/QF_FF.smt2" {
		t.Fatalf("expected corpus-relative path, got=%s", doc.Logics[0].Path)
	}
	if len(doc.Logics[0].Theories) != 1 || doc.Logics[0].Theories[0] != "FieldElements" {
		t.Fatalf("expected theories carried, got=%v", doc.Logics[0].Theories)
	}
	if !strings.Contains(doc.Logics[0].Summary, "QF_FF") {
		t.Fatalf("expected summary, got=%q", doc.Logics[0].Summary)
	}
	if len(doc.Theories) != 1 || doc.Theories[0].Sorts != "((FiniteField 1))" {
		t.Fatalf("expected theory sorts carried, got=%+v", doc.Theories)
	}
}

func TestExportCatalog_Query(t *testing.T) {
	root := seedCorpus(t)

	loader := smt2.NewLoader()
	uc := NewExportCatalog(loader, loader)

	b, err := uc.Execute(context.Background(), root, `$.logics[*].name`)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		t.Fatalf("unmarshal query result: %v (%s)", err, b)
	}
	if len(names) != 1 || names[0] != "QF_FF" {
		t.Fatalf("expected [QF_FF], got=%v", names)
	}
}

func TestExportCatalog_MalformedFileFails(t *testing.T) {
	root := seedCorpus(t)
	writeCorpusFile(t, root, "theories/BAD.smt2", `(theory`)

	loader := smt2.NewLoader()
	uc := NewExportCatalog(loader, loader)

	if _, err := uc.Execute(context.Background(), root, ""); err == nil {
		t.Fatalf("expected error")
	}
}
