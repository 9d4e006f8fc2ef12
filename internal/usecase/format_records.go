package usecase

import (
	"context"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/ports"
)

type FormatRecords struct {
	formatter ports.RecordFormatter
	catalog   ports.Catalog
}

func NewFormatRecords(f ports.RecordFormatter, cat ports.Catalog) *FormatRecords {
	return &FormatRecords{formatter: f, catalog: cat}
}

// Execute rewrites every record under root into canonical form. With
// check true nothing is written; the report lists what would change.
// Files are processed in catalog order so output and rewrites are
// deterministic.
func (uc *FormatRecords) Execute(ctx context.Context, root string, check bool) (domain.FormatReport, error) {
	logicRefs, err := uc.catalog.ListLogics(root)
	if err != nil {
		return domain.FormatReport{}, err
	}
	theoryRefs, err := uc.catalog.ListTheories(root)
	if err != nil {
		return domain.FormatReport{}, err
	}

	report := domain.FormatReport{
		Root:  root,
		Check: check,
		Total: len(logicRefs) + len(theoryRefs),
	}

	for _, ref := range logicRefs {
		if err := ctx.Err(); err != nil {
			return domain.FormatReport{}, err
		}
		changed, err := uc.formatter.FormatLogicFile(ref.Path, !check)
		if err != nil {
			return domain.FormatReport{}, err
		}
		if changed {
			report.Changed = append(report.Changed, ref.Path)
		}
	}

	for _, ref := range theoryRefs {
		if err := ctx.Err(); err != nil {
			return domain.FormatReport{}, err
		}
		changed, err := uc.formatter.FormatTheoryFile(ref.Path, !check)
		if err != nil {
			return domain.FormatReport{}, err
		}
		if changed {
			report.Changed = append(report.Changed, ref.Path)
		}
	}

	return report, nil
}
