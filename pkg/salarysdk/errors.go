package salarysdk

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoResult is returned when the gateway answers with a null body.
var ErrNoResult = errors.New("salarysdk: no result")

// StatusError reports an unexpected HTTP status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("salarysdk: unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsRateLimited reports whether err is a 429 from the gateway.
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusTooManyRequests
}
