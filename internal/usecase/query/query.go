// Package query applies JSONPath filters to exported catalog documents.
package query

import (
	"encoding/json"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/trail-of-forks/smtcat/internal/domain"
)

// Apply evaluates a JSONPath expression against a JSON document and
// returns the matched value re-marshaled as indented JSON.
func Apply(doc []byte, expr string) ([]byte, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return doc, nil
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, &domain.OpError{
			Op:   "query.parse",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	got, err := jsonpath.Get(expr, v)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	out, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.marshal",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return out, nil
}
