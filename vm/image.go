package vm

import (
	"io"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ParseImage reads a program image: signed words separated by commas or
// whitespace, loaded verbatim as initial memory contents. A $( ... )
// token is evaluated as a Starlark expression at load time; text from a
// ';' to the end of its line is a comment.
func ParseImage(src io.Reader) (image []Word, err error) {
	text, err := io.ReadAll(src)
	if err != nil {
		return
	}

	for _, token := range splitImage(string(text)) {
		var value Word

		if expr, ok := strings.CutPrefix(token, "$("); ok {
			expr, ok = strings.CutSuffix(expr, ")")
			if !ok {
				err = ErrParseExpression(token)
				return
			}

			value, err = evalExpression(expr)
			if err != nil {
				return
			}
		} else {
			var n int64
			n, err = strconv.ParseInt(token, 10, 64)
			if err != nil {
				err = ErrParseNumber(token)
				return
			}
			value = Word(n)
		}

		image = append(image, value)
	}

	if len(image) == 0 {
		err = ErrImageEmpty
	}

	return
}

// splitImage splits image text into word tokens. Commas and whitespace
// delimit tokens, except inside the parentheses of an expression.
func splitImage(text string) (tokens []string) {
	var token strings.Builder
	var depth int
	var comment bool

	flush := func() {
		t := strings.TrimSpace(token.String())
		token.Reset()
		if t != "" {
			tokens = append(tokens, t)
		}
	}

	for _, r := range text {
		switch {
		case comment:
			if r == '\n' {
				comment = false
				flush()
			}
		case depth == 0 && r == ';':
			comment = true
		case depth == 0 && (r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'):
			flush()
		default:
			switch r {
			case '(':
				depth++
			case ')':
				depth--
			}
			token.WriteRune(r)
		}
	}
	flush()

	return
}

// evalExpression evaluates a load-time Starlark expression to a word.
func evalExpression(expr string) (value Word, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, starlark.StringDict{})
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	n, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = Word(n)

	return
}
