package rom

import (
	"errors"

	"github.com/ezrec/quadasm/translate"
)

var f = translate.From

var (
	ErrHeader = errors.New(f("not a v2.0 raw image"))
)

// ErrWord is returned for an image entry that is not a 16-bit hex word.
type ErrWord string

func (err ErrWord) Error() string {
	return f("'%v' is not a hex word", string(err))
}
