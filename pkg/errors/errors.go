package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrListen        = errors.New("listen failed")
)

// ListenError reports a listener that could not be bound.
type ListenError struct {
	Name  string
	Addr  string
	Cause error
}

func (e *ListenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s listener %s: %v", e.Name, e.Addr, e.Cause)
	}
	return fmt.Sprintf("%s listener %s: %v", e.Name, e.Addr, ErrListen)
}

func (e *ListenError) Unwrap() error {
	return e.Cause
}

func (e *ListenError) Is(target error) bool {
	return target == ErrListen
}

func NewListenError(name, addr string, cause error) *ListenError {
	return &ListenError{
		Name:  name,
		Addr:  addr,
		Cause: cause,
	}
}

func IsListenError(err error) bool {
	var listenErr *ListenError
	return errors.As(err, &listenErr)
}
