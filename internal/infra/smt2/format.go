package smt2

import (
	"bytes"

	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/sexp"
)

// FormatLogic renders a logic record in canonical form: one attribute per
// line, fixed attribute order, unset fields omitted, preserved unknown
// attributes last in source order. Reparsing the output yields a record
// equal to the input, so format is safe to run over a whole corpus.
func FormatLogic(l domain.Logic) []byte {
	var b bytes.Buffer
	openRecord(&b, "logic", l.Name)

	writeScalar(&b, "smt-lib-version", l.SMTLibVersion)
	writeScalar(&b, "smt-lib-release", l.SMTLibRelease)
	writeScalar(&b, "written-by", l.WrittenBy)
	writeScalar(&b, "date", l.Date)
	writeScalar(&b, "last-updated", l.LastUpdated)
	writeScalar(&b, "update-history", l.UpdateHistory)
	writeSymbolList(&b, "theories", l.Theories)
	writeScalar(&b, "language", l.Language)
	writeScalar(&b, "extensions", l.Extensions)
	writeScalar(&b, "values", l.Values)
	writeScalar(&b, "notes", l.Notes)
	writeExtras(&b, l.Extras)

	b.WriteString(")\n")
	return b.Bytes()
}

// FormatTheory renders a theory record in canonical form. Same contract as
// FormatLogic.
func FormatTheory(t domain.Theory) []byte {
	var b bytes.Buffer
	openRecord(&b, "theory", t.Name)

	writeScalar(&b, "smt-lib-version", t.SMTLibVersion)
	writeScalar(&b, "smt-lib-release", t.SMTLibRelease)
	writeScalar(&b, "written-by", t.WrittenBy)
	writeScalar(&b, "date", t.Date)
	writeScalar(&b, "last-updated", t.LastUpdated)
	writeScalar(&b, "update-history", t.UpdateHistory)
	writeRawAttr(&b, "sorts", t.Sorts)
	writeRawAttr(&b, "funs", t.Funs)
	writeScalar(&b, "sorts-description", t.SortsDescription)
	writeScalar(&b, "funs-description", t.FunsDescription)
	writeScalar(&b, "definition", t.Definition)
	writeScalar(&b, "values", t.Values)
	writeScalar(&b, "notes", t.Notes)
	writeExtras(&b, t.Extras)

	b.WriteString(")\n")
	return b.Bytes()
}

func openRecord(b *bytes.Buffer, head, name string) {
	b.WriteByte('(')
	b.WriteString(head)
	b.WriteByte(' ')
	b.WriteString(sexp.QuoteSymbol(name))
	b.WriteByte('\n')
}

// writeScalar emits ` :key value`, bare for numerals and decimals, quoted
// otherwise. Multi-line prose keeps its embedded newlines inside the
// quotes. Empty values mean the field is unset and are skipped.
func writeScalar(b *bytes.Buffer, key, val string) {
	if val == "" {
		return
	}
	b.WriteString(" :")
	b.WriteString(key)
	b.WriteByte(' ')
	if sexp.IsNumeric(val) {
		b.WriteString(val)
	} else {
		b.WriteString(sexp.QuoteString(val))
	}
	b.WriteByte('\n')
}

func writeSymbolList(b *bytes.Buffer, key string, names []string) {
	if len(names) == 0 {
		return
	}
	b.WriteString(" :")
	b.WriteString(key)
	b.WriteString(" (")
	for i, n := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sexp.QuoteSymbol(n))
	}
	b.WriteString(")\n")
}

// writeRawAttr emits an attribute whose value is carried as already
// canonical S-expression text.
func writeRawAttr(b *bytes.Buffer, key, raw string) {
	if raw == "" {
		return
	}
	b.WriteString(" :")
	b.WriteString(key)
	b.WriteByte(' ')
	b.WriteString(raw)
	b.WriteByte('\n')
}

// writeExtras emits preserved unknown attributes. An empty Raw means the
// attribute had no value in the source, so none is written back.
func writeExtras(b *bytes.Buffer, extras []domain.Attr) {
	for _, a := range extras {
		b.WriteString(" :")
		b.WriteString(a.Key)
		if a.Raw != "" {
			b.WriteByte(' ')
			b.WriteString(a.Raw)
		}
		b.WriteByte('\n')
	}
}
