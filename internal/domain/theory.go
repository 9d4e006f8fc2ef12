package domain

import (
	"fmt"
	"strings"
)

// Theory is an SMT-LIB theory definition: the metadata record behind a
// `(theory <NAME> :key value ...)` form, e.g. Core or FieldElements.
// Logics reference theories by name through their :theories attribute.
// Like Logic, a Theory is immutable once loaded.
type Theory struct {
	Name string

	SMTLibVersion string
	SMTLibRelease string
	WrittenBy     string
	Date          string
	LastUpdated   string
	UpdateHistory string

	// Sorts and Funs hold the declaration bodies as canonical S-expression
	// text. smtcat catalogs the metadata; interpreting declarations is
	// solver territory and stays out.
	Sorts string
	Funs  string

	SortsDescription string
	FunsDescription  string
	Definition       string
	Values           string
	Notes            string

	Extras []Attr
}

// Extra returns the preserved raw value for an unrecognized key.
func (t Theory) Extra(key string) (string, bool) {
	for _, a := range t.Extras {
		if a.Key == key {
			return a.Raw, true
		}
	}
	return "", false
}

// Summary renders a one-line description: name, version, and the first
// sentence of the definition prose.
func (t Theory) Summary() string {
	var b strings.Builder
	b.WriteString(t.Name)

	if t.SMTLibVersion != "" {
		fmt.Fprintf(&b, " (SMT-LIB %s)", t.SMTLibVersion)
	}

	if s := FirstSentence(t.Definition); s != "" {
		b.WriteString(": ")
		b.WriteString(s)
	}
	return b.String()
}

// TheoryRef is a lightweight reference to a theory file on disk.
type TheoryRef struct {
	Name string
	Path string
}
