package usecase

import (
	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/ports"
)

type InitCorpus struct {
	initializer ports.CorpusInitializer
}

func NewInitCorpus(initializer ports.CorpusInitializer) *InitCorpus {
	return &InitCorpus{initializer: initializer}
}

func (uc *InitCorpus) Execute(root string, force bool) error {
	return uc.initializer.Init(domain.CorpusSpec{Root: root}, force)
}
