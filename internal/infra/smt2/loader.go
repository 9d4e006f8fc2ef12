package smt2

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/ports"
)

// Loader reads records from a corpus directory tree.
type Loader struct {
	logicsDir   string
	theoriesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{logicsDir: "logics", theoriesDir: "theories"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithLogicsDir(dir string) Option {
	return func(l *Loader) { l.logicsDir = dir }
}

func WithTheoriesDir(dir string) Option {
	return func(l *Loader) { l.theoriesDir = dir }
}

var _ ports.RecordLoader = (*Loader)(nil)
var _ ports.Catalog = (*Loader)(nil)

func (l *Loader) LoadLogic(path string) (domain.Logic, []domain.Warning, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Logic{}, nil, &domain.OpError{
			Op:   "smt2.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return ParseLogic(path, b)
}

func (l *Loader) LoadTheory(path string) (domain.Theory, []domain.Warning, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Theory{}, nil, &domain.OpError{
			Op:   "smt2.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return ParseTheory(path, b)
}

func (l *Loader) ListLogics(root string) ([]domain.LogicRef, error) {
	paths, err := l.listRecords(filepath.Join(root, l.logicsDir))
	if err != nil {
		return nil, err
	}

	refs := make([]domain.LogicRef, 0, len(paths))
	for _, p := range paths {
		refs = append(refs, domain.LogicRef{Name: recordName(p, "logic"), Path: p})
	}
	// Path breaks ties so listings stay stable when two files declare the
	// same name.
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Name != refs[j].Name {
			return refs[i].Name < refs[j].Name
		}
		return refs[i].Path < refs[j].Path
	})
	return refs, nil
}

func (l *Loader) ListTheories(root string) ([]domain.TheoryRef, error) {
	paths, err := l.listRecords(filepath.Join(root, l.theoriesDir))
	if err != nil {
		return nil, err
	}

	refs := make([]domain.TheoryRef, 0, len(paths))
	for _, p := range paths {
		refs = append(refs, domain.TheoryRef{Name: recordName(p, "theory"), Path: p})
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Name != refs[j].Name {
			return refs[i].Name < refs[j].Name
		}
		return refs[i].Path < refs[j].Path
	})
	return refs, nil
}

func (l *Loader) listRecords(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "smt2.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".smt2") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// recordName reads just the record's declared name for listing. Files that
// fail to parse still get listed under their filename stem so a broken
// record shows up in the catalog instead of vanishing.
func recordName(path, head string) string {
	if n, err := readRecordName(path, head); err == nil && strings.TrimSpace(n) != "" {
		return n
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func readRecordName(path, head string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	name, _, err := parseRecord(path, b, head)
	if err != nil {
		return "", err
	}
	return name, nil
}
