package ports

import "github.com/trail-of-forks/smtcat/internal/domain"

type CorpusInitializer interface {
	Init(spec domain.CorpusSpec, force bool) error
}
