package sexp

import "strings"

// String renders the node in canonical single-line form.
func (n Node) String() string {
	var b strings.Builder
	appendNode(&b, n)
	return b.String()
}

func appendNode(b *strings.Builder, n Node) {
	switch n.Kind {
	case KindList:
		b.WriteByte('(')
		for i, child := range n.List {
			if i > 0 {
				b.WriteByte(' ')
			}
			appendNode(b, child)
		}
		b.WriteByte(')')
	case KindSymbol:
		b.WriteString(QuoteSymbol(n.Text))
	case KindKeyword:
		b.WriteByte(':')
		b.WriteString(n.Text)
	case KindString:
		b.WriteString(QuoteString(n.Text))
	default:
		// Numerals, decimals, and radix constants render verbatim.
		if n.Kind == KindHex {
			b.WriteString("#x")
		} else if n.Kind == KindBinary {
			b.WriteString("#b")
		}
		b.WriteString(n.Text)
	}
}

// QuoteString wraps s in double quotes, doubling any embedded quote.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			b.WriteString(`""`)
			continue
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteSymbol renders a symbol, pipe-quoting it when it is not a legal
// simple symbol.
func QuoteSymbol(s string) string {
	if IsSimpleSymbol(s) {
		return s
	}
	return "|" + s + "|"
}

// IsSimpleSymbol reports whether s can be written without pipe quoting:
// nonempty, symbol characters only, not starting with a digit.
func IsSimpleSymbol(s string) bool {
	if s == "" {
		return false
	}
	if isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isSymbolChar(s[i]) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether s lexes as a bare numeral or decimal, which
// record formatters use to decide whether a value needs string quoting.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	dot := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			if dot >= 0 {
				return false
			}
			dot = i
			continue
		}
		if !isDigit(s[i]) {
			return false
		}
	}
	// A leading or trailing dot is not a decimal.
	return dot != 0 && dot != len(s)-1
}
