// Package sexp reads and writes the S-expression subset used by SMT-LIB
// logic and theory definition files.
//
// It covers the concrete syntax those files need: parenthesized lists,
// simple and |quoted| symbols, :keywords, "string" literals with the
// doubled-quote escape, numerals, decimals, #x/#b constants, and `;`
// line comments. Nothing term-level. The package knows nothing about
// logics, theories, or the filesystem.
package sexp

import "fmt"

// Kind discriminates the node variants.
type Kind uint8

const (
	KindSymbol Kind = iota
	KindKeyword
	KindString
	KindNumeral
	KindDecimal
	KindHex
	KindBinary
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindKeyword:
		return "keyword"
	case KindString:
		return "string"
	case KindNumeral:
		return "numeral"
	case KindDecimal:
		return "decimal"
	case KindHex:
		return "hexadecimal"
	case KindBinary:
		return "binary"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Pos is a 1-based line/column source position.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Node is a single S-expression: an atom or a list.
//
// For atoms, Text holds the decoded value: symbol name without |pipes|,
// string content with "" collapsed to ", keyword name without the leading
// colon, and numeric text verbatim. For lists, List holds the children in
// source order and Text is empty.
type Node struct {
	Kind Kind
	Text string
	List []Node
	Pos  Pos
}

// IsAtom reports whether the node is anything but a list.
func (n Node) IsAtom() bool {
	return n.Kind != KindList
}

// SyntaxError reports a scan or parse failure with its source position.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func syntaxErr(pos Pos, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
