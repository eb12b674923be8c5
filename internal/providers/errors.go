package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals that no provider was configured.
var ErrProviderUnavailable = errors.New("league provider unavailable")

// FetchError captures a failed upstream request. The core never retries; the
// error carries enough context for the caller to decide how to degrade.
type FetchError struct {
	Host       string
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "league fetch failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d host=%s)", msg, e.StatusCode, e.Host)
	}
	if e.Host != "" {
		return fmt.Sprintf("%s (host=%s)", msg, e.Host)
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
