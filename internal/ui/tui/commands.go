package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/infra/corpusfinder"
	"github.com/trail-of-forks/smtcat/internal/infra/smt2"
	"github.com/trail-of-forks/smtcat/internal/usecase"
)

func cmdRefreshCorpus(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return corpusRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.CorpusLocator == nil {
			return corpusRefreshedMsg{cwd: wd, found: false, err: errors.New("CorpusLocator is nil")}
		}

		root, findErr := deps.CorpusLocator.FindRoot(wd)
		if findErr != nil {
			return corpusRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return corpusRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitCorpusHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.CorpusInitializer == nil {
			return initCorpusDoneMsg{root: root, err: errors.New("CorpusInitializer is nil")}
		}

		err := deps.CorpusInitializer.Init(domain.CorpusSpec{Root: root}, false)
		return initCorpusDoneMsg{root: root, err: err}
	}
}

func cmdLoadLogics(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := corpusfinder.LoadConfig(root)
		if err != nil {
			return logicsLoadedMsg{root: root, err: err}
		}

		loader := smt2.NewLoader(
			smt2.WithLogicsDir(cfg.Paths.LogicsDir),
		)

		refs, err := loader.ListLogics(root)
		return logicsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdLoadTheories(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := corpusfinder.LoadConfig(root)
		if err != nil {
			return theoriesLoadedMsg{root: root, err: err}
		}

		loader := smt2.NewLoader(
			smt2.WithTheoriesDir(cfg.Paths.TheoriesDir),
		)

		refs, err := loader.ListTheories(root)
		return theoriesLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdPreviewRecord(path string, kind domain.RecordKind) tea.Cmd {
	return func() tea.Msg {
		p := filepath.Clean(path)

		loader := smt2.NewLoader()

		var preview string
		switch kind {
		case domain.RecordTheory:
			thy, warns, err := loader.LoadTheory(p)
			if err != nil {
				return recordPreviewMsg{path: p, err: err}
			}
			preview = buildRecordPreview(thy.Summary(), smt2.FormatTheory(thy), warns)
		default:
			lg, warns, err := loader.LoadLogic(p)
			if err != nil {
				return recordPreviewMsg{path: p, err: err}
			}
			preview = buildRecordPreview(lg.Summary(), smt2.FormatLogic(lg), warns)
		}

		return recordPreviewMsg{path: p, preview: preview, err: nil}
	}
}

func listenValidate(ch <-chan validateDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return validateDoneMsg{err: errors.New("validate channel closed")}
		}
		return msg
	}
}

func startValidateAsync(
	corpusRoot string,
	log *slog.Logger,
	debug bool,
) (chan validateDoneMsg, tea.Cmd) {
	ch := make(chan validateDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		log.Info("validate.start",
			"corpus", corpusRoot,
			"debug", debug,
		)

		cfg, err := corpusfinder.LoadConfig(corpusRoot)
		if err != nil {
			log.Error("validate.load_config.failed", "err", err)
			ch <- validateDoneMsg{err: err}
			return
		}

		loader := smt2.NewLoader(
			smt2.WithLogicsDir(cfg.Paths.LogicsDir),
			smt2.WithTheoriesDir(cfg.Paths.TheoriesDir),
		)

		uc := usecase.NewValidateCorpus(loader, loader, cfg)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		report, execErr := uc.Execute(ctx, corpusRoot)

		if execErr != nil {
			log.Error("validate.failed", "err", execErr)
		} else {
			log.Info("validate.ok",
				"logics", report.LogicCount,
				"theories", report.TheoryCount,
				"errors", report.Failures(),
				"warnings", report.WarningCount(),
			)
		}

		for _, fr := range report.Files {
			if fr.Failed() {
				log.Warn("record.invalid",
					"kind", string(fr.Kind),
					"name", fr.Name,
					"path", fr.Path,
					"findings", len(fr.Findings),
				)
			} else if debug {
				log.Debug("record.ok",
					"kind", string(fr.Kind),
					"name", fr.Name,
					"path", fr.Path,
				)
			}
		}

		ch <- validateDoneMsg{report: report, err: execErr}
	}()

	return ch, listenValidate(ch)
}
