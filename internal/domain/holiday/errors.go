package holiday

import "errors"

var (
	ErrRequestNotFound = errors.New("holiday request not found")
	ErrAlreadyDecided  = errors.New("holiday request already decided")
)
