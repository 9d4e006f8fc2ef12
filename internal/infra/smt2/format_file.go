package smt2

import (
	"bytes"
	"os"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/ports"
)

var _ ports.RecordFormatter = (*Loader)(nil)

// FormatLogicFile parses the logic at path and, when write is true and the
// canonical form differs, rewrites the file in place. Unknown attributes
// survive the rewrite verbatim.
func (l *Loader) FormatLogicFile(path string, write bool) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, &domain.OpError{
			Op:   "smt2.format",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	logic, _, err := ParseLogic(path, src)
	if err != nil {
		return false, err
	}

	return l.rewrite(path, src, FormatLogic(logic), write)
}

// FormatTheoryFile is FormatLogicFile for theory records.
func (l *Loader) FormatTheoryFile(path string, write bool) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, &domain.OpError{
			Op:   "smt2.format",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	theory, _, err := ParseTheory(path, src)
	if err != nil {
		return false, err
	}

	return l.rewrite(path, src, FormatTheory(theory), write)
}

func (l *Loader) rewrite(path string, src, canonical []byte, write bool) (bool, error) {
	if bytes.Equal(src, canonical) {
		return false, nil
	}
	if !write {
		return true, nil
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, canonical, 0o644); err != nil {
		return false, &domain.OpError{
			Op:   "smt2.format",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return false, &domain.OpError{
			Op:   "smt2.format",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return true, nil
}
