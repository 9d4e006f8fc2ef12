package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/infra/corpusfinder"
	"github.com/trail-of-forks/smtcat/internal/infra/indexstore"
	"github.com/trail-of-forks/smtcat/internal/infra/smt2"
	"github.com/trail-of-forks/smtcat/internal/ports"
)

type corpusCtx struct {
	root string
	cfg  domain.Config

	records ports.RecordLoader
	catalog ports.Catalog

	formatter ports.RecordFormatter
	index     ports.IndexStore
}

func loadCorpus(corpusFlag string) (*corpusCtx, error) {
	root, err := resolveCorpusRoot(corpusFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := corpusfinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	loader := smt2.NewLoader(
		smt2.WithLogicsDir(cfg.Paths.LogicsDir),
		smt2.WithTheoriesDir(cfg.Paths.TheoriesDir),
	)

	store := indexstore.NewMDStore(root, cfg)

	return &corpusCtx{
		root:      root,
		cfg:       cfg,
		records:   loader,
		catalog:   loader,
		formatter: loader,
		index:     store,
	}, nil
}

func resolveCorpusRoot(corpusFlag string) (string, error) {
	c := strings.TrimSpace(corpusFlag)
	if c != "" {
		abs, err := filepath.Abs(c)
		if err != nil {
			return "", fmt.Errorf("invalid corpus path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := corpusfinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("corpus not found from %q (tip: run `smtcat init`): %w", wd, err)
	}
	return root, nil
}

func resolveRecordArg(ws *corpusCtx, arg string) (string, domain.RecordKind, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", "", fmt.Errorf("record name or path is required")
	}

	// If arg looks like a path (contains separators), resolve relative to corpus root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		p = filepath.Clean(p)
		kind, err := sniffRecordKind(p)
		if err != nil {
			return "", "", err
		}
		return p, kind, nil
	}

	logicsDir := filepath.Join(ws.root, ws.cfg.Paths.LogicsDir)
	theoriesDir := filepath.Join(ws.root, ws.cfg.Paths.TheoriesDir)

	// If user provided "QF_FF.smt2", try it under both record dirs.
	if hasSMT2Ext(in) {
		if p := filepath.Join(logicsDir, in); fileExists(p) {
			return p, domain.RecordLogic, nil
		}
		if p := filepath.Join(theoriesDir, in); fileExists(p) {
			return p, domain.RecordTheory, nil
		}
	}

	// If user provided "QF_FF", try QF_FF.smt2 under both record dirs.
	if p := filepath.Join(logicsDir, in+".smt2"); fileExists(p) {
		return p, domain.RecordLogic, nil
	}
	if p := filepath.Join(theoriesDir, in+".smt2"); fileExists(p) {
		return p, domain.RecordTheory, nil
	}

	// As a last resort: match by the name declared inside the record.
	if refs, err := ws.catalog.ListLogics(ws.root); err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, domain.RecordLogic, nil
			}
		}
	}
	if refs, err := ws.catalog.ListTheories(ws.root); err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, domain.RecordTheory, nil
			}
		}
	}

	return "", "", fmt.Errorf("record %q not found in %q or %q", in, logicsDir, theoriesDir)
}

func sniffRecordKind(path string) (domain.RecordKind, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read record %q: %w", path, err)
	}
	return smt2.DetectKind(path, src)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasSMT2Ext(s string) bool {
	return strings.ToLower(filepath.Ext(s)) == ".smt2"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
