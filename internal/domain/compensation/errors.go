package compensation

import "errors"

var (
	ErrRequestNotFound = errors.New("compensation request not found")
	ErrAlreadyDecided  = errors.New("compensation request already decided")
)
