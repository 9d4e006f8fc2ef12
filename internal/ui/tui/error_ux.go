package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/trail-of-forks/smtcat/internal/domain"
)

// Parse errors carry a "line:col" position from the scanner.
var rePos = regexp.MustCompile(`\b(\d+):(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "smt2") {
				return "Record not found"
			}
			if strings.Contains(oe.Op, "corpusfinder.findroot") {
				return "Corpus not found"
			}
			return "Not found"

		case domain.KindMalformed:
			base := "record"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Malformed record at " + base + " line " + line
			}
			return "Malformed record at " + base

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := rePos.FindStringSubmatch(s)
	if len(m) == 3 {
		return m[1]
	}
	return ""
}
