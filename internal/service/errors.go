package service

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks request parameter problems detected before any
// query runs. Handlers map it to a 400; everything else surfaces as an
// opaque upstream failure.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidArgument}, args...)...)
}
