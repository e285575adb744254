package sitectl

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// dataRegion is the span of a loader file that sync owns.
type dataRegion struct {
	// start and end delimit the bytes to replace.
	start, end int

	// indent is the leading whitespace of the line the region starts on.
	indent string

	// marked is true when the region was found between marker comments;
	// otherwise it is a bare array literal that still needs markers.
	marked bool
}

func beginMarker(array string) string { return "/* sitectl:" + array + ":begin */" }
func endMarker(array string) string   { return "/* sitectl:" + array + ":end */" }

// locateRegion finds the data region for array in a loader source. Marker
// comments win; without them the source is tokenized to find the array
// literal assigned to this.<array>.
func locateRegion(src []byte, array string) (dataRegion, error) {
	begin, end := []byte(beginMarker(array)), []byte(endMarker(array))
	nb, ne := bytes.Count(src, begin), bytes.Count(src, end)

	switch {
	case nb == 0 && ne == 0:
		return findArrayLiteral(src, array)
	case nb != 1 || ne != 1:
		return dataRegion{}, fmt.Errorf("%w: expected one begin and one end marker for %s, found %d and %d",
			ErrLoaderRegion, array, nb, ne)
	}

	i := bytes.Index(src, begin) + len(begin)
	j := bytes.Index(src, end)
	if j < i {
		return dataRegion{}, fmt.Errorf("%w: end marker for %s precedes begin marker", ErrLoaderRegion, array)
	}
	return dataRegion{start: i, end: j, indent: lineIndent(src, i), marked: true}, nil
}

// findArrayLiteral scans the JavaScript tokens of src for
//
//	this.<array> = [ ... ]
//
// and returns the span of the array literal including both brackets.
// Brackets inside strings, template literals, regular expressions and
// comments are separate tokens and never counted.
func findArrayLiteral(src []byte, array string) (dataRegion, error) {
	l := js.NewLexer(parse.NewInputBytes(src))

	const (
		wantThis = iota
		wantDot
		wantName
		wantEq
		wantBracket
		inArray
	)

	state := wantThis
	offset := 0
	start := 0
	depth := 0
	prev := js.ErrorToken

	for {
		tt, data := l.Next()
		if (tt == js.DivToken || tt == js.DivEqToken) && regExpAllowed(prev) {
			// RegExp re-lexes from the slash, which starts at offset.
			tt, data = l.RegExp()
		}
		if tt == js.ErrorToken {
			break
		}
		at := offset
		offset += len(data)

		switch tt {
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
			continue
		}

		if state == inArray {
			switch tt {
			case js.OpenBracketToken:
				depth++
			case js.CloseBracketToken:
				depth--
				if depth == 0 {
					return dataRegion{start: start, end: offset, indent: lineIndent(src, start)}, nil
				}
			}
			prev = tt
			continue
		}

		switch {
		case state == wantDot && tt == js.DotToken:
			state = wantName
		case state == wantName && tt == js.IdentifierToken && string(data) == array:
			state = wantEq
		case state == wantEq && tt == js.EqToken:
			state = wantBracket
		case state == wantBracket && tt == js.OpenBracketToken:
			state = inArray
			start = at
			depth = 1
		case tt == js.ThisToken:
			state = wantDot
		default:
			state = wantThis
		}
		prev = tt
	}

	if state == inArray {
		return dataRegion{}, fmt.Errorf("%w: array literal for this.%s is not closed", ErrLoaderRegion, array)
	}
	return dataRegion{}, fmt.Errorf("%w: this.%s = [ ... ]", ErrLoaderPattern, array)
}

// regExpAllowed reports whether a slash after the previous significant
// token starts a regular expression rather than a division.
func regExpAllowed(prev js.TokenType) bool {
	switch prev {
	case js.IdentifierToken, js.ThisToken, js.TrueToken, js.FalseToken, js.NullToken,
		js.StringToken, js.TemplateToken, js.TemplateEndToken, js.RegExpToken,
		js.DecimalToken, js.BinaryToken, js.OctalToken, js.HexadecimalToken, js.IntegerToken,
		js.IncrToken, js.DecrToken,
		js.CloseParenToken, js.CloseBracketToken, js.CloseBraceToken:
		return false
	}
	return true
}

// lineIndent returns the spaces and tabs that start the line containing
// offset i.
func lineIndent(src []byte, i int) string {
	lineStart := bytes.LastIndexByte(src[:i], '\n') + 1
	j := lineStart
	for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
		j++
	}
	return string(src[lineStart:j])
}

// checkSyntax parses src as JavaScript.
func checkSyntax(src []byte) error {
	_, err := js.Parse(parse.NewInputBytes(src), js.Options{})
	return err
}
