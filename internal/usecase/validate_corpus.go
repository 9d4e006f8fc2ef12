package usecase

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/ports"
	"golang.org/x/sync/errgroup"
)

type ValidateCorpus struct {
	loader  ports.RecordLoader
	catalog ports.Catalog
	cfg     domain.Config
}

func NewValidateCorpus(rl ports.RecordLoader, cat ports.Catalog, cfg domain.Config) *ValidateCorpus {
	return &ValidateCorpus{loader: rl, catalog: cat, cfg: cfg}
}

// Execute loads every record under root and reports per-file findings.
// Files load concurrently with a bounded worker count; findings never
// abort the pass. Cross-file checks (theory references, duplicate names)
// run after all loads complete.
func (uc *ValidateCorpus) Execute(ctx context.Context, root string) (domain.ValidationReport, error) {
	logicRefs, err := uc.catalog.ListLogics(root)
	if err != nil {
		return domain.ValidationReport{}, err
	}
	theoryRefs, err := uc.catalog.ListTheories(root)
	if err != nil {
		return domain.ValidationReport{}, err
	}

	report := domain.ValidationReport{
		Root:      root,
		StartedAt: time.Now(),
		Files:     make([]domain.FileReport, len(logicRefs)+len(theoryRefs)),
	}

	// Loaded records are kept beside the reports for the cross-file
	// checks; each goroutine writes only its own slot.
	logics := make([]*domain.Logic, len(logicRefs))
	theories := make([]*domain.Theory, len(theoryRefs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(report.Files)))

	for i, ref := range logicRefs {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			fr := domain.FileReport{Path: ref.Path, Kind: domain.RecordLogic, Name: ref.Name}
			l, warns, err := uc.loader.LoadLogic(ref.Path)
			if err != nil {
				fr.Findings = append(fr.Findings, parseFinding(err))
			} else {
				fr.Name = l.Name
				logics[i] = &l
				fr.Findings = append(fr.Findings, warningFindings(warns)...)
				fr.Findings = append(fr.Findings, uc.metadataFindings(l.SMTLibVersion, l.WrittenBy, l.Date)...)
			}
			report.Files[i] = fr
			return nil
		})
	}

	for i, ref := range theoryRefs {
		slot := len(logicRefs) + i
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			fr := domain.FileReport{Path: ref.Path, Kind: domain.RecordTheory, Name: ref.Name}
			t, warns, err := uc.loader.LoadTheory(ref.Path)
			if err != nil {
				fr.Findings = append(fr.Findings, parseFinding(err))
			} else {
				fr.Name = t.Name
				theories[i] = &t
				fr.Findings = append(fr.Findings, warningFindings(warns)...)
				fr.Findings = append(fr.Findings, uc.metadataFindings(t.SMTLibVersion, t.WrittenBy, t.Date)...)
			}
			report.Files[slot] = fr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.ValidationReport{}, err
	}

	theoryNames := map[string]bool{}
	for _, t := range theories {
		if t != nil {
			theoryNames[t.Name] = true
			report.TheoryCount++
		}
	}

	seenLogics := map[string]string{}
	for i, l := range logics {
		if l == nil {
			continue
		}
		report.LogicCount++

		// A logic referencing a theory outside this corpus is common
		// (e.g. Core lives upstream), so it warns rather than fails.
		for _, name := range l.Theories {
			if !theoryNames[name] {
				report.Files[i].Findings = append(report.Files[i].Findings, domain.Finding{
					Kind:     domain.FindingUnresolvedTheory,
					Severity: domain.SeverityWarning,
					Message:  fmt.Sprintf("references theory %q not present in this corpus", name),
				})
			}
		}

		if first, ok := seenLogics[l.Name]; ok {
			report.Files[i].Findings = append(report.Files[i].Findings, domain.Finding{
				Kind:     domain.FindingDuplicateName,
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("logic %q already defined in %s", l.Name, first),
			})
		} else {
			seenLogics[l.Name] = logicRefs[i].Path
		}
	}

	seenTheories := map[string]string{}
	for i, t := range theories {
		if t == nil {
			continue
		}
		slot := len(logicRefs) + i

		if first, ok := seenTheories[t.Name]; ok {
			report.Files[slot].Findings = append(report.Files[slot].Findings, domain.Finding{
				Kind:     domain.FindingDuplicateName,
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("theory %q already defined in %s", t.Name, first),
			})
		} else {
			seenTheories[t.Name] = theoryRefs[i].Path
		}
	}

	report.EndedAt = time.Now()
	return report, nil
}

func (uc *ValidateCorpus) metadataFindings(version, writtenBy, date string) []domain.Finding {
	if !uc.cfg.Validate.RequireMetadata {
		return nil
	}

	var out []domain.Finding
	missing := func(key string) {
		out = append(out, domain.Finding{
			Kind:     domain.FindingMissingMetadata,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("missing recommended attribute :%s", key),
		})
	}

	if version == "" {
		missing("smt-lib-version")
	}
	if writtenBy == "" {
		missing("written-by")
	}
	if date == "" {
		missing("date")
	}
	return out
}

func parseFinding(err error) domain.Finding {
	return domain.Finding{
		Kind:     domain.FindingParseError,
		Severity: domain.SeverityError,
		Message:  err.Error(),
	}
}

func warningFindings(warns []domain.Warning) []domain.Finding {
	out := make([]domain.Finding, 0, len(warns))
	for _, w := range warns {
		out = append(out, domain.Finding{
			Kind:     domain.FindingUnknownKey,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("unknown attribute :%s", w.Key),
		})
	}
	return out
}

func workerCount(fileCount int) int {
	return max(min(runtime.NumCPU(), fileCount), 1)
}
