package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/trail-of-forks/smtcat/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func buildRecordPreview(summary string, canonical []byte, warns []domain.Warning) string {
	var b strings.Builder

	b.WriteString(summary)
	b.WriteString("\n\n")

	if len(warns) > 0 {
		b.WriteString("Warnings:\n")
		for _, w := range warns {
			b.WriteString("  - ")
			b.WriteString(w.String())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.Write(canonical)
	return b.String()
}

func renderReport(report domain.ValidationReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Records: %d logic(s), %d theory(ies)\n", report.LogicCount, report.TheoryCount)
	fmt.Fprintf(&b, "Result:  %d error(s), %d warning(s)\n\n", report.Failures(), report.WarningCount())

	for _, fr := range report.Files {
		status := "OK"
		if fr.Failed() {
			status = "FAIL"
		}

		rel, err := filepath.Rel(report.Root, fr.Path)
		if err != nil {
			rel = fr.Path
		}

		b.WriteString("- [")
		b.WriteString(status)
		b.WriteString("] ")
		b.WriteString(fr.Name)
		b.WriteString(" (")
		b.WriteString(rel)
		b.WriteString(")\n")

		for _, fin := range fr.Findings {
			b.WriteString("    ")
			b.WriteString(string(fin.Severity))
			b.WriteString(": ")
			b.WriteString(fin.Message)
			b.WriteString("\n")
		}
	}

	return b.String()
}
