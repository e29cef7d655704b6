package errors

import "fmt"

var (
	ErrWorkerPanic   = fmt.Errorf("worker panic")
	ErrRoomNotFound  = fmt.Errorf("room not found")
	ErrACLDenied     = fmt.Errorf("denied by room access policy")
	ErrFileNotFound  = fmt.Errorf("file not found")
	ErrMalformedURI  = fmt.Errorf("malformed uri")
	ErrMissingScheme = fmt.Errorf("uri has no scheme")
)
