package wire

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBody      = errors.New("wire: empty message body")
	ErrInvalidKindTag = errors.New("wire: invalid message kind tag")
	ErrInvalidReqID   = errors.New("wire: invalid request id")
	ErrMalformed      = errors.New("wire: malformed message encoding")
	ErrInvalidMessage = errors.New("wire: invalid message encoding")
)

var (
	errReqIDTooLong   = errors.New("request id longer than 8 bytes")
	errNodeIDLength   = errors.New("node id must be exactly 32 bytes")
	errAddressLength  = errors.New("invalid address length")
	errUintOverflow   = errors.New("integer value out of range")
	errTrailingItems  = errors.New("unexpected trailing list elements")
	errNoContentCodec = errors.New("no content codec configured")
)

// ContentError reports that the content codec rejected the payload of an
// embedded kind.
type ContentError struct {
	Kind Kind
	Err  error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("wire: unable to decode %s message: %v", e.Kind, e.Err)
}

func (e *ContentError) Unwrap() error { return e.Err }
