package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrMalformed     = errors.New("malformed record")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindMalformed     ErrorKind = "malformed"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// WarningKind classifies non-fatal loader diagnostics.
type WarningKind string

const (
	// WarnUnknownKey marks an unrecognized :key preserved in the record's
	// Extras instead of being rejected. The logic-definition format gains
	// keys across SMT-LIB releases, so unknown keys must load.
	WarnUnknownKey WarningKind = "unknown_key"
)

// Warning is a non-fatal diagnostic accumulated during a load and returned
// alongside the parsed record.
type Warning struct {
	Kind    WarningKind
	Key     string
	Message string
}

func (w Warning) String() string {
	if w.Key != "" {
		return fmt.Sprintf("%s (:%s): %s", w.Kind, w.Key, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}
