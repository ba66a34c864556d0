package monitor

import (
	"errors"

	"github.com/ezrec/vole/translate"
)

var f = translate.From

var (
	ErrExpressionEmpty = errors.New(f("empty expression"))
)

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not a valid integer expression", string(err))
}
