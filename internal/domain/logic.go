package domain

import (
	"fmt"
	"strings"
)

// Logic is an SMT-LIB logic definition: a named metadata record loaded from
// a `(logic <NAME> :key value ...)` form. All fields are set at load time
// and never mutated, so a Logic may be shared freely across goroutines.
type Logic struct {
	Name string

	// Version metadata, verbatim from the source file.
	SMTLibVersion string
	SMTLibRelease string
	WrittenBy     string
	Date          string
	LastUpdated   string
	UpdateHistory string

	// Theories lists the background theories by name, in source order.
	// Order matters for display fidelity, not semantics.
	Theories []string

	// Language describes the logic's grammar and semantics in prose.
	Language string

	Extensions string
	Values     string
	Notes      string

	// Extras preserves unrecognized attributes in source order. The
	// definition format is maintained externally and gains keys over time;
	// they pass through load and serialize untouched.
	Extras []Attr
}

// Attr is one preserved attribute: a key and the canonical S-expression
// text of its value. Raw is empty for valueless attributes.
type Attr struct {
	Key string
	Raw string
}

// Extra returns the preserved raw value for an unrecognized key.
func (l Logic) Extra(key string) (string, bool) {
	for _, a := range l.Extras {
		if a.Key == key {
			return a.Raw, true
		}
	}
	return "", false
}

// Summary renders a one-line human-readable description for listing and
// search contexts: name, version, theories, and the first sentence of the
// language prose. It is pure; calling it never mutates the record.
func (l Logic) Summary() string {
	var b strings.Builder
	b.WriteString(l.Name)

	var meta []string
	if l.SMTLibVersion != "" {
		meta = append(meta, "SMT-LIB "+l.SMTLibVersion)
	}
	if len(l.Theories) > 0 {
		meta = append(meta, "theories: "+strings.Join(l.Theories, ", "))
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(meta, "; "))
	}

	if s := FirstSentence(l.Language); s != "" {
		b.WriteString(": ")
		b.WriteString(s)
	}
	return b.String()
}

// LogicRef is a lightweight reference to a logic file on disk.
type LogicRef struct {
	Name string
	Path string
}

// FirstSentence extracts the first sentence of a prose field, collapsing
// the source file's line wrapping into single spaces. It returns the whole
// (collapsed) text when no sentence terminator is found.
func FirstSentence(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	var b strings.Builder
	for i, w := range fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		if strings.HasSuffix(w, ".") {
			break
		}
	}
	return b.String()
}
