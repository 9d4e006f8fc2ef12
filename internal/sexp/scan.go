package sexp

import "strings"

// Parse reads exactly one top-level node and rejects trailing content
// (comments and whitespace after the node are fine).
func Parse(src []byte) (Node, error) {
	s := newScanner(src)

	n, err := s.next()
	if err != nil {
		return Node{}, err
	}

	s.skipSpace()
	if !s.eof() {
		return Node{}, syntaxErr(s.pos(), "trailing content after top-level form")
	}
	return n, nil
}

// ParseAll reads every top-level node in src.
func ParseAll(src []byte) ([]Node, error) {
	s := newScanner(src)

	var out []Node
	for {
		s.skipSpace()
		if s.eof() {
			return out, nil
		}
		n, err := s.next()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
}

type scanner struct {
	src  []byte
	off  int
	line int
	col  int
}

func newScanner(src []byte) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

func (s *scanner) eof() bool {
	return s.off >= len(s.src)
}

func (s *scanner) pos() Pos {
	return Pos{Line: s.line, Col: s.col}
}

func (s *scanner) peek() byte {
	return s.src[s.off]
}

func (s *scanner) advance() byte {
	c := s.src[s.off]
	s.off++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

// skipSpace consumes whitespace and ; line comments.
func (s *scanner) skipSpace() {
	for !s.eof() {
		switch c := s.peek(); {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == ';':
			for !s.eof() && s.peek() != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

// next scans one node, list or atom.
func (s *scanner) next() (Node, error) {
	s.skipSpace()
	if s.eof() {
		return Node{}, syntaxErr(s.pos(), "unexpected end of input")
	}

	start := s.pos()
	switch c := s.peek(); {
	case c == '(':
		return s.list(start)
	case c == ')':
		return Node{}, syntaxErr(start, "unexpected ')'")
	case c == '"':
		return s.string_(start)
	case c == '|':
		return s.quotedSymbol(start)
	case c == ':':
		return s.keyword(start)
	case c == '#':
		return s.radixConstant(start)
	case c >= '0' && c <= '9':
		return s.numeric(start)
	case isSymbolChar(c):
		return s.symbol(start)
	default:
		return Node{}, syntaxErr(start, "illegal character %q", c)
	}
}

func (s *scanner) list(start Pos) (Node, error) {
	s.advance() // '('

	n := Node{Kind: KindList, Pos: start}
	for {
		s.skipSpace()
		if s.eof() {
			return Node{}, syntaxErr(start, "unclosed '('")
		}
		if s.peek() == ')' {
			s.advance()
			return n, nil
		}

		child, err := s.next()
		if err != nil {
			return Node{}, err
		}
		n.List = append(n.List, child)
	}
}

// string_ scans a "..." literal. The only escape is a doubled quote.
func (s *scanner) string_(start Pos) (Node, error) {
	s.advance() // opening '"'

	var b strings.Builder
	for {
		if s.eof() {
			return Node{}, syntaxErr(start, "unclosed string literal")
		}
		c := s.advance()
		if c != '"' {
			b.WriteByte(c)
			continue
		}
		if !s.eof() && s.peek() == '"' {
			s.advance()
			b.WriteByte('"')
			continue
		}
		return Node{Kind: KindString, Text: b.String(), Pos: start}, nil
	}
}

// quotedSymbol scans a |...| symbol. Pipes and backslashes cannot appear inside.
func (s *scanner) quotedSymbol(start Pos) (Node, error) {
	s.advance() // opening '|'

	var b strings.Builder
	for {
		if s.eof() {
			return Node{}, syntaxErr(start, "unclosed quoted symbol")
		}
		c := s.advance()
		if c == '|' {
			return Node{Kind: KindSymbol, Text: b.String(), Pos: start}, nil
		}
		if c == '\\' {
			return Node{}, syntaxErr(start, `backslash not allowed in quoted symbol`)
		}
		b.WriteByte(c)
	}
}

func (s *scanner) keyword(start Pos) (Node, error) {
	s.advance() // ':'

	var b strings.Builder
	for !s.eof() && isSymbolChar(s.peek()) {
		b.WriteByte(s.advance())
	}
	if b.Len() == 0 {
		return Node{}, syntaxErr(start, "':' must be followed by a keyword name")
	}
	return Node{Kind: KindKeyword, Text: b.String(), Pos: start}, nil
}

// radixConstant scans #x... or #b... constants.
func (s *scanner) radixConstant(start Pos) (Node, error) {
	s.advance() // '#'
	if s.eof() {
		return Node{}, syntaxErr(start, "'#' must begin a #x or #b constant")
	}

	marker := s.advance()
	var kind Kind
	var ok func(byte) bool
	switch marker {
	case 'x':
		kind, ok = KindHex, isHexDigit
	case 'b':
		kind, ok = KindBinary, isBinDigit
	default:
		return Node{}, syntaxErr(start, "'#' must begin a #x or #b constant")
	}

	var b strings.Builder
	for !s.eof() && ok(s.peek()) {
		b.WriteByte(s.advance())
	}
	if b.Len() == 0 {
		return Node{}, syntaxErr(start, "#%c constant has no digits", marker)
	}
	return Node{Kind: kind, Text: b.String(), Pos: start}, nil
}

// numeric scans a numeral or, with a fractional part, a decimal.
func (s *scanner) numeric(start Pos) (Node, error) {
	var b strings.Builder
	for !s.eof() && isDigit(s.peek()) {
		b.WriteByte(s.advance())
	}

	kind := KindNumeral
	if !s.eof() && s.peek() == '.' {
		kind = KindDecimal
		b.WriteByte(s.advance())
		n := 0
		for !s.eof() && isDigit(s.peek()) {
			b.WriteByte(s.advance())
			n++
		}
		if n == 0 {
			return Node{}, syntaxErr(start, "decimal %q has no fractional digits", b.String())
		}
	}

	// Digits running straight into symbol characters ("2x") is not a token.
	if !s.eof() && isSymbolChar(s.peek()) {
		return Node{}, syntaxErr(start, "malformed numeric token")
	}
	return Node{Kind: kind, Text: b.String(), Pos: start}, nil
}

func (s *scanner) symbol(start Pos) (Node, error) {
	var b strings.Builder
	for !s.eof() && isSymbolChar(s.peek()) {
		b.WriteByte(s.advance())
	}
	return Node{Kind: KindSymbol, Text: b.String(), Pos: start}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinDigit(c byte) bool {
	return c == '0' || c == '1'
}

// isSymbolChar reports whether c may appear in a simple symbol.
func isSymbolChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z',
		c >= 'A' && c <= 'Z',
		c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '~', '!', '@', '$', '%', '^', '&', '*', '_', '-', '+', '=', '<', '>', '.', '?', '/':
		return true
	}
	return false
}
