package ports

import "github.com/trail-of-forks/smtcat/internal/domain"

// IndexStore persists a rendered corpus index for browsing.
type IndexStore interface {
	SaveIndex(idx domain.CorpusIndex) (path string, err error)
}
