package sim

import "errors"

// ErrInvalidAddress reports a source or destination that is not strict
// dotted-decimal IPv4. It is the only user-facing error the engine
// produces; all other inputs are clamped into range before use.
var ErrInvalidAddress = errors.New("invalid IPv4 address")
