package api

import (
	"errors"
	"fmt"
)

// FetchFailedMessage is the only text shown to the user when rooms cannot be loaded.
const FetchFailedMessage = "Failed to fetch room data. Please try again later."

var ErrUnexpectedStatus = errors.New("unexpected status")

type Kind string

const (
	KindNetwork Kind = "network"
	KindStatus  Kind = "status"
	KindParse   Kind = "parse"
)

type FetchError struct {
	Kind Kind
	Err  error
}

func (e *FetchError) Error() string {
	return FetchFailedMessage
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Cause describes the underlying failure for logs.
func (e *FetchError) Cause() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// CauseOf returns the logged description of err, looking through a
// FetchError to the failure it wraps.
func CauseOf(err error) string {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Cause()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func newFetchError(kind Kind, err error) *FetchError {
	return &FetchError{Kind: kind, Err: err}
}
