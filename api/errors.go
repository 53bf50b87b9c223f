package api

import "fmt"

// Error is a failed API call: the HTTP status plus the server-supplied
// message when one was present. Operations never swallow failures; every
// non-2xx response and every payload with a false success flag surfaces
// as an *Error.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("http status %d", e.Status)
}
