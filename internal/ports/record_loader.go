package ports

import "github.com/trail-of-forks/smtcat/internal/domain"

// RecordLoader loads logic and theory records from a source (e.g., filesystem).
// Warnings report recoverable oddities such as unknown attribute keys.
type RecordLoader interface {
	LoadLogic(path string) (domain.Logic, []domain.Warning, error)
	LoadTheory(path string) (domain.Theory, []domain.Warning, error)
}
