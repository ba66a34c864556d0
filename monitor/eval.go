package monitor

import (
	"iter"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// bareHex matches a lone hexadecimal number without a prefix.
var bareHex = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// Eval evaluates an integer expression. A bare number is hexadecimal;
// anything else is evaluated as a Starlark expression, where the defines
// are predeclared integers.
func Eval(expr string, defines iter.Seq2[string, string]) (value int, err error) {
	expr = strings.TrimSpace(expr)
	if len(expr) == 0 {
		err = ErrExpressionEmpty
		return
	}

	if bareHex.MatchString(expr) {
		var v64 int64
		v64, err = strconv.ParseInt(expr, 16, 0)
		if err != nil {
			err = ErrParseExpression(expr)
			return
		}
		value = int(v64)
		return
	}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range defines {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer defines.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
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
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value = int(st_int64)
	return
}
