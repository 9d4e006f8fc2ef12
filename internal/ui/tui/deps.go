package tui

import (
	"log/slog"

	"github.com/trail-of-forks/smtcat/internal/ports"
)

type Deps struct {
	CorpusLocator     ports.CorpusLocator
	CorpusInitializer ports.CorpusInitializer

	Logger *slog.Logger
	Debug  bool
}
