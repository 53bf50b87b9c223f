package session

import "context"

// GuardAction is the route guard's verdict for a navigation request.
type GuardAction int

const (
	// GuardAllow renders the guarded content unmodified.
	GuardAllow GuardAction = iota
	// GuardRedirect sends the caller to the login surface.
	GuardRedirect
)

// Decision carries the guard verdict plus the originally requested
// location, preserved for post-login return.
type Decision struct {
	Action   GuardAction
	Location string // redirect target when Action is GuardRedirect
	From     string // originally requested location
}

// Guard gates protected surfaces on session state. While the session is
// loading, Check blocks and takes no redirect action; once loaded it allows
// authenticated callers through and redirects the rest to LoginPath.
type Guard struct {
	Manager   *Manager
	LoginPath string // defaults to "/login"
}

// Check blocks until the session finishes loading (or ctx is done), then
// returns the verdict for the requested location.
func (g *Guard) Check(ctx context.Context, requested string) (Decision, error) {
	for {
		gate, loading := g.Manager.loadingGate()
		if !loading {
			break
		}
		select {
		case <-ctx.Done():
			return Decision{}, ctx.Err()
		case <-gate:
		}
	}

	if g.Manager.Authenticated() {
		return Decision{Action: GuardAllow, From: requested}, nil
	}
	login := g.LoginPath
	if login == "" {
		login = "/login"
	}
	return Decision{Action: GuardRedirect, Location: login, From: requested}, nil
}
