package remote

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrForbidden is matched by a StatusError carrying 403, i.e. a wrong password.
var ErrForbidden = errors.New("remote api rejected the password")

// StatusError is returned for every non-200 answer.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d - %s", e.Code, e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrForbidden && e.Code == http.StatusForbidden
}

// IsForbidden reports whether err was caused by a rejected password.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
