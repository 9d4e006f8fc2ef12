package ports

import "github.com/trail-of-forks/smtcat/internal/domain"

// Catalog enumerates the records available under a corpus root.
type Catalog interface {
	ListLogics(root string) ([]domain.LogicRef, error)
	ListTheories(root string) ([]domain.TheoryRef, error)
}
