package domain

import "fmt"

// Redirect is the typed control transfer used for every authorization
// outcome: missing session, expired session, wrong role. It travels as an
// error so that callers are forced to propagate it immediately; the central
// HTTP error handler turns it into a 303. Authorization never produces an
// error page.
type Redirect struct {
	Location string
}

func (r *Redirect) Error() string {
	return fmt.Sprintf("redirect to %s", r.Location)
}

// NewRedirect builds a redirect control transfer to the given location.
func NewRedirect(location string) *Redirect {
	return &Redirect{Location: location}
}
