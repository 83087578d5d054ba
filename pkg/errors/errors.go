package errors

import (
	"fmt"
)

var (
	ErrUnknownJob       = fmt.Errorf("unknown job")
	ErrInvalidArg       = fmt.Errorf("invalid arg")
	ErrBadStatus        = fmt.Errorf("bad status code")
	ErrCrumbRejected    = fmt.Errorf("request rejected for missing or stale crumb")
	ErrCreateUnverified = fmt.Errorf("job not found after create")
	ErrNotAvailable     = fmt.Errorf("server client could not be built")
)
