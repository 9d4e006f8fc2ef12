package domain

import "time"

// RecordKind distinguishes the two record families in a corpus.
type RecordKind string

const (
	RecordLogic  RecordKind = "logic"
	RecordTheory RecordKind = "theory"
)

// FindingKind is a high-level classification of validation findings.
type FindingKind string

const (
	FindingParseError       FindingKind = "parse_error"
	FindingUnknownKey       FindingKind = "unknown_key"
	FindingUnresolvedTheory FindingKind = "unresolved_theory"
	FindingMissingMetadata  FindingKind = "missing_metadata"
	FindingDuplicateName    FindingKind = "duplicate_name"
)

// Severity separates findings that fail a validation run from advisories.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single validation outcome against one corpus file.
type Finding struct {
	Kind     FindingKind
	Severity Severity
	Message  string
}

// FileReport collects the findings for one file.
type FileReport struct {
	Path string
	Kind RecordKind

	// Name is the record's declared name when parsing got that far.
	Name string

	Findings []Finding
}

// Failed reports whether any finding has error severity.
func (r FileReport) Failed() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ValidationReport aggregates a validation pass over a corpus.
type ValidationReport struct {
	Root string

	StartedAt time.Time
	EndedAt   time.Time

	LogicCount  int
	TheoryCount int

	Files []FileReport
}

// Failures counts files with at least one error-severity finding.
func (r ValidationReport) Failures() int {
	n := 0
	for _, f := range r.Files {
		if f.Failed() {
			n++
		}
	}
	return n
}

// WarningCount counts warning-severity findings across all files.
func (r ValidationReport) WarningCount() int {
	n := 0
	for _, fr := range r.Files {
		for _, f := range fr.Findings {
			if f.Severity == SeverityWarning {
				n++
			}
		}
	}
	return n
}

// FormatReport summarizes a canonical-form pass over a corpus. In check
// mode Changed lists the files that would be rewritten; otherwise the
// files that were.
type FormatReport struct {
	Root  string
	Check bool

	Total   int
	Changed []string
}
