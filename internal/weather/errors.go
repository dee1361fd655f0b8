package weather

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a fetch failed.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota + 1
	KindProviderRejected
	KindMalformedResponse
	KindLocationNotFound
)

var (
	ErrNetwork           = errors.New("network failure")
	ErrProviderRejected  = errors.New("provider rejected request")
	ErrMalformedResponse = errors.New("malformed provider response")
	ErrLocationNotFound  = errors.New("location not found")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindProviderRejected:
		return ErrProviderRejected
	case KindMalformedResponse:
		return ErrMalformedResponse
	case KindLocationNotFound:
		return ErrLocationNotFound
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown error"
}

// FetchError is the only error type a Provider returns.
type FetchError struct {
	Kind     ErrorKind
	Provider string
	Location Location
	// Status is the upstream HTTP status for KindProviderRejected.
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	var msg string
	switch e.Kind {
	case KindLocationNotFound:
		msg = fmt.Sprintf("%s: no place matches %q", e.Provider, string(e.Location))
	case KindProviderRejected:
		msg = fmt.Sprintf("%s rejected the request for %s (HTTP %d)", e.Provider, e.Location, e.Status)
	default:
		msg = fmt.Sprintf("%s: %s for %s", e.Provider, e.Kind, e.Location)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's kind, so errors.Is(err, ErrNetwork) works.
func (e *FetchError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf returns the kind of a FetchError anywhere in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}
