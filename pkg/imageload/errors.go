package imageload

import "errors"

var (
	ErrInvalidURL       = errors.New("imageload: invalid image url")
	ErrRequestFailed    = errors.New("imageload: request failed")
	ErrUnexpectedStatus = errors.New("imageload: unexpected response status")
	ErrTooLarge         = errors.New("imageload: image exceeds size limit")
	ErrDecode           = errors.New("imageload: failed to decode image")
)
