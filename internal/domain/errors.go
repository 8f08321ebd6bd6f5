package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoCourses    = errors.New("no courses available")
)

// UpstreamError reports a failed call to the course platform. StatusCode is
// zero when the request never produced a response.
type UpstreamError struct {
	Resource   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("fetch %s: upstream returned status %d", e.Resource, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
	default:
		return fmt.Sprintf("fetch %s: failed", e.Resource)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Message is the caller-facing description, e.g. "Failed to get completed courses".
func (e *UpstreamError) Message() string {
	return "Failed to get " + e.Resource
}

func IsUpstreamError(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}
