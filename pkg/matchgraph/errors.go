package matchgraph

import (
	"errors"
	"fmt"
)

// ErrGuestNotFound is returned when the viewer name matches no roster entry.
var ErrGuestNotFound = errors.New("matchgraph: guest not found")

// GuestNotFoundError carries the name that failed to resolve.
type GuestNotFoundError struct {
	Name string
}

func (e *GuestNotFoundError) Error() string {
	return fmt.Sprintf("matchgraph: no guest named %q", e.Name)
}

// Unwrap lets errors.Is match ErrGuestNotFound.
func (e *GuestNotFoundError) Unwrap() error {
	return ErrGuestNotFound
}
