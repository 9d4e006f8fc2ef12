package usecase

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/ports"
	"github.com/trail-of-forks/smtcat/internal/usecase/query"
	"golang.org/x/sync/errgroup"
)

type ExportCatalog struct {
	loader  ports.RecordLoader
	catalog ports.Catalog
}

func NewExportCatalog(rl ports.RecordLoader, cat ports.Catalog) *ExportCatalog {
	return &ExportCatalog{loader: rl, catalog: cat}
}

// Execute renders the whole catalog as indented JSON, ordered by record
// name. A non-empty jsonPath narrows the output to the matched value.
// Export fails on the first malformed record; run validate to find them
// all.
func (uc *ExportCatalog) Execute(ctx context.Context, root, jsonPath string) ([]byte, error) {
	logicRefs, err := uc.catalog.ListLogics(root)
	if err != nil {
		return nil, err
	}
	theoryRefs, err := uc.catalog.ListTheories(root)
	if err != nil {
		return nil, err
	}

	doc := exportCatalog{
		Root:        root,
		GeneratedAt: time.Now().UTC(),
		Logics:      make([]exportLogic, len(logicRefs)),
		Theories:    make([]exportTheory, len(theoryRefs)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(logicRefs) + len(theoryRefs)))

	for i, ref := range logicRefs {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			l, _, err := uc.loader.LoadLogic(ref.Path)
			if err != nil {
				return err
			}
			doc.Logics[i] = newExportLogic(l, relPath(root, ref.Path))
			return nil
		})
	}

	for i, ref := range theoryRefs {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			t, _, err := uc.loader.LoadTheory(ref.Path)
			if err != nil {
				return err
			}
			doc.Theories[i] = newExportTheory(t, relPath(root, ref.Path))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, &domain.OpError{
			Op:   "export.marshal",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	if jsonPath != "" {
		return query.Apply(b, jsonPath)
	}
	return b, nil
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

type exportCatalog struct {
	Root        string         `json:"root"`
	GeneratedAt time.Time      `json:"generated_at"`
	Logics      []exportLogic  `json:"logics"`
	Theories    []exportTheory `json:"theories"`
}

type exportAttr struct {
	Key string `json:"key"`
	Raw string `json:"raw,omitempty"`
}

type exportLogic struct {
	Name          string       `json:"name"`
	Path          string       `json:"path"`
	SMTLibVersion string       `json:"smt_lib_version,omitempty"`
	SMTLibRelease string       `json:"smt_lib_release,omitempty"`
	WrittenBy     string       `json:"written_by,omitempty"`
	Date          string       `json:"date,omitempty"`
	LastUpdated   string       `json:"last_updated,omitempty"`
	UpdateHistory string       `json:"update_history,omitempty"`
	Theories      []string     `json:"theories,omitempty"`
	Language      string       `json:"language,omitempty"`
	Extensions    string       `json:"extensions,omitempty"`
	Values        string       `json:"values,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	Extras        []exportAttr `json:"extras,omitempty"`
	Summary       string       `json:"summary"`
}

type exportTheory struct {
	Name             string       `json:"name"`
	Path             string       `json:"path"`
	SMTLibVersion    string       `json:"smt_lib_version,omitempty"`
	SMTLibRelease    string       `json:"smt_lib_release,omitempty"`
	WrittenBy        string       `json:"written_by,omitempty"`
	Date             string       `json:"date,omitempty"`
	LastUpdated      string       `json:"last_updated,omitempty"`
	UpdateHistory    string       `json:"update_history,omitempty"`
	Sorts            string       `json:"sorts,omitempty"`
	Funs             string       `json:"funs,omitempty"`
	SortsDescription string       `json:"sorts_description,omitempty"`
	FunsDescription  string       `json:"funs_description,omitempty"`
	Definition       string       `json:"definition,omitempty"`
	Values           string       `json:"values,omitempty"`
	Notes            string       `json:"notes,omitempty"`
	Extras           []exportAttr `json:"extras,omitempty"`
	Summary          string       `json:"summary"`
}

func newExportLogic(l domain.Logic, path string) exportLogic {
	return exportLogic{
		Name:          l.Name,
		Path:          path,
		SMTLibVersion: l.SMTLibVersion,
		SMTLibRelease: l.SMTLibRelease,
		WrittenBy:     l.WrittenBy,
		Date:          l.Date,
		LastUpdated:   l.LastUpdated,
		UpdateHistory: l.UpdateHistory,
		Theories:      l.Theories,
		Language:      l.Language,
		Extensions:    l.Extensions,
		Values:        l.Values,
		Notes:         l.Notes,
		Extras:        newExportAttrs(l.Extras),
		Summary:       l.Summary(),
	}
}

func newExportTheory(t domain.Theory, path string) exportTheory {
	return exportTheory{
		Name:             t.Name,
		Path:             path,
		SMTLibVersion:    t.SMTLibVersion,
		SMTLibRelease:    t.SMTLibRelease,
		WrittenBy:        t.WrittenBy,
		Date:             t.Date,
		LastUpdated:      t.LastUpdated,
		UpdateHistory:    t.UpdateHistory,
		Sorts:            t.Sorts,
		Funs:             t.Funs,
		SortsDescription: t.SortsDescription,
		FunsDescription:  t.FunsDescription,
		Definition:       t.Definition,
		Values:           t.Values,
		Notes:            t.Notes,
		Extras:           newExportAttrs(t.Extras),
		Summary:          t.Summary(),
	}
}

func newExportAttrs(attrs []domain.Attr) []exportAttr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]exportAttr, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, exportAttr{Key: a.Key, Raw: a.Raw})
	}
	return out
}
