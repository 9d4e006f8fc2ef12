package tui

import "github.com/trail-of-forks/smtcat/internal/domain"

type corpusRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initCorpusDoneMsg struct {
	root string
	err  error
}

type logicsLoadedMsg struct {
	root string
	refs []domain.LogicRef
	err  error
}

type theoriesLoadedMsg struct {
	root string
	refs []domain.TheoryRef
	err  error
}

type recordPreviewMsg struct {
	path    string
	preview string
	err     error
}

type validateDoneMsg struct {
	report domain.ValidationReport
	err    error
}
