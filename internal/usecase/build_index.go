package usecase

import (
	"context"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/ports"
	"golang.org/x/sync/errgroup"
)

type BuildIndex struct {
	loader  ports.RecordLoader
	catalog ports.Catalog
	store   ports.IndexStore
}

func NewBuildIndex(rl ports.RecordLoader, cat ports.Catalog, store ports.IndexStore) *BuildIndex {
	return &BuildIndex{loader: rl, catalog: cat, store: store}
}

// Execute renders the corpus index and saves it through the store,
// returning the written path. Like export, it fails on the first
// malformed record.
func (uc *BuildIndex) Execute(ctx context.Context, root string) (string, error) {
	logicRefs, err := uc.catalog.ListLogics(root)
	if err != nil {
		return "", err
	}
	theoryRefs, err := uc.catalog.ListTheories(root)
	if err != nil {
		return "", err
	}

	idx := domain.CorpusIndex{
		Root:     root,
		Logics:   make([]domain.IndexEntry, len(logicRefs)),
		Theories: make([]domain.IndexEntry, len(theoryRefs)),
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
			idx.Logics[i] = domain.IndexEntry{
				Name:    l.Name,
				Path:    relPath(root, ref.Path),
				Summary: l.Summary(),
			}
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
			idx.Theories[i] = domain.IndexEntry{
				Name:    t.Name,
				Path:    relPath(root, ref.Path),
				Summary: t.Summary(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	return uc.store.SaveIndex(idx)
}
