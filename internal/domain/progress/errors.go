package progress

import "errors"

var (
	ErrReportNotFound = errors.New("progress report not found")
)
