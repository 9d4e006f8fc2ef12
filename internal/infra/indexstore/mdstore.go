// Package indexstore renders the browsable corpus index artifact.
package indexstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/ports"
)

const defaultDocsDir = "docs"
const indexFile = "index.md"

type MDStore struct {
	rootDir     string
	docsDirName string
	now         func() time.Time
}

type Option func(*MDStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *MDStore) { s.now = now }
}

func NewMDStore(root string, cfg domain.Config, opts ...Option) *MDStore {
	docsDir := cfg.Paths.DocsDir
	if strings.TrimSpace(docsDir) == "" {
		docsDir = defaultDocsDir
	}

	s := &MDStore{
		rootDir:     root,
		docsDirName: docsDir,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.IndexStore = (*MDStore)(nil)

func (s *MDStore) SaveIndex(idx domain.CorpusIndex) (string, error) {
	dir := filepath.Join(s.rootDir, s.docsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "indexstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := idx.GeneratedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	path := filepath.Join(dir, indexFile)
	b := renderIndex(idx, ts)

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "indexstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "indexstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return path, nil
}

func renderIndex(idx domain.CorpusIndex, ts time.Time) []byte {
	var b strings.Builder

	b.WriteString("# Corpus index\n\n")
	fmt.Fprintf(&b, "Generated %s from %d logics and %d theories.\n",
		ts.Format("2006-01-02 15:04:05 MST"), len(idx.Logics), len(idx.Theories))

	writeSection(&b, "Logics", idx.Logics)
	writeSection(&b, "Theories", idx.Theories)

	return []byte(b.String())
}

func writeSection(b *strings.Builder, title string, entries []domain.IndexEntry) {
	if len(entries) == 0 {
		return
	}

	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, e := range entries {
		if e.Path != "" {
			fmt.Fprintf(b, "- [%s](../%s)", e.Name, filepath.ToSlash(e.Path))
		} else {
			fmt.Fprintf(b, "- %s", e.Name)
		}
		// Summaries start with the record name; keep only the rest so
		// entries do not read the name twice.
		if s := strings.TrimSpace(strings.TrimPrefix(e.Summary, e.Name)); s != "" {
			fmt.Fprintf(b, " %s", s)
		}
		b.WriteByte('\n')
	}
}
