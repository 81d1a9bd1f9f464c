// Package contparse implements a stateless, hand-written
// recursive-descent parser for the continuity DSL (§4.1). Parse takes
// a source string and returns a fresh AST; there is no global lexer
// or parser state to reset between calls, unlike the teacher
// language's YACC-generated parser with its module-global
// yyinputbuffer.
package contparse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/bdwalton/ccanim/contast"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEquals
	tokEOF
)

type token struct {
	kind       tokenKind
	text       string
	num        float64
	line, col  int
	srcLen     int
}

func (t token) span() contast.Span {
	return contast.Span{Line: t.line, Col: t.col, Len: t.srcLen}
}

// lex tokenises src. // is not a supported comment marker (§4.1).
func lex(src string) ([]token, error) {
	var toks []token
	line, col := 1, 1
	i := 0
	n := len(src)

	advance := func(k int) {
		for j := 0; j < k; j++ {
			if i+j < n && src[i+j] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		i += k
	}

	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			advance(1)
		case c == '+':
			toks = append(toks, token{kind: tokPlus, text: "+", line: line, col: col, srcLen: 1})
			advance(1)
		case c == '-':
			toks = append(toks, token{kind: tokMinus, text: "-", line: line, col: col, srcLen: 1})
			advance(1)
		case c == '*':
			toks = append(toks, token{kind: tokStar, text: "*", line: line, col: col, srcLen: 1})
			advance(1)
		case c == '/':
			toks = append(toks, token{kind: tokSlash, text: "/", line: line, col: col, srcLen: 1})
			advance(1)
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", line: line, col: col, srcLen: 1})
			advance(1)
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", line: line, col: col, srcLen: 1})
			advance(1)
		case c == '=':
			toks = append(toks, token{kind: tokEquals, text: "=", line: line, col: col, srcLen: 1})
			advance(1)
		case c >= '0' && c <= '9' || c == '.':
			start, startLine, startCol := i, line, col
			j := i
			sawDot := false
			for j < n && (src[j] >= '0' && src[j] <= '9' || (src[j] == '.' && !sawDot)) {
				if src[j] == '.' {
					sawDot = true
				}
				j++
			}
			text := src[start:j]
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &SyntaxError{Span: contast.Span{Line: startLine, Col: startCol, Len: j - start}, Msg: "invalid number: " + text}
			}
			toks = append(toks, token{kind: tokNumber, text: text, num: f, line: startLine, col: startCol, srcLen: j - start})
			advance(j - i)
		case unicode.IsLetter(rune(c)):
			start, startLine, startCol := i, line, col
			j := i
			for j < n && (unicode.IsLetter(rune(src[j])) || unicode.IsDigit(rune(src[j]))) {
				j++
			}
			text := src[start:j]
			toks = append(toks, token{kind: tokIdent, text: strings.ToUpper(text), line: startLine, col: startCol, srcLen: j - start})
			advance(j - i)
		default:
			return nil, &SyntaxError{Span: contast.Span{Line: line, Col: col, Len: 1}, Msg: "unexpected character " + string(c)}
		}
	}

	toks = append(toks, token{kind: tokEOF, line: line, col: col})
	return toks, nil
}
