// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// A ConnectionError reports a structural wiring violation: connecting a point
// or wire that is already connected, disconnecting a pair that is not
// connected, or wiring a fixed-arity component with the wrong number of wires.
//
type ConnectionError string

func (e ConnectionError) Error() string { return string(e) }

// connErrorf builds a ConnectionError with a stack trace attached.
func connErrorf(format string, args ...interface{}) error {
	return errors.WithStack(ConnectionError(fmt.Sprintf(format, args...)))
}

// IsConnectionError reports whether err is or wraps a ConnectionError.
//
func IsConnectionError(err error) bool {
	var ce ConnectionError
	return stderrors.As(err, &ce)
}

// A BadTritError reports a raw value outside the balanced-ternary domain.
//
type BadTritError int

func (e BadTritError) Error() string {
	return fmt.Sprintf("cannot set state to: %d", int(e))
}

// A CascadeError reports a propagation cascade that exceeded MaxCascadeDepth,
// almost always caused by a feedback cycle in the wiring graph. The value is
// the depth at which the cascade was aborted.
//
type CascadeError int

func (e CascadeError) Error() string {
	return fmt.Sprintf("cascade aborted at depth %d: wiring graph has a feedback cycle", int(e))
}

// IsCascadeError reports whether err is or wraps a CascadeError.
//
func IsCascadeError(err error) bool {
	var ce CascadeError
	return stderrors.As(err, &ce)
}
