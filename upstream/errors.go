package upstream

import (
	"errors"
	"net/http"
)

// Error is the normalized failure every wrapper surfaces: the upstream
// message when the envelope carried one, otherwise the wrapper's generic
// fallback. Op and Status are kept for logs and status mapping only; the
// message the user sees is exactly Message.
type Error struct {
	Op      string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusFor maps a wrapper error to the status the console should respond
// with: upstream 4xx pass through, everything else is a bad gateway.
func StatusFor(err error) int {
	var ue *Error
	if errors.As(err, &ue) {
		if ue.Status >= 400 && ue.Status < 500 {
			return ue.Status
		}
	}
	return http.StatusBadGateway
}
