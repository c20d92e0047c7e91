// Package navigation decides which screens are reachable for the current
// session state.
package navigation

import (
	"strings"

	"almanack/models"
)

// Screen is a logical screen of the application.
type Screen string

const (
	Login     Screen = "login"
	Booking   Screen = "booking"
	Activity  Screen = "activity"
	Selection Screen = "selection"
	Unknown   Screen = ""
)

// Path returns the canonical route of s.
func (s Screen) Path() string {
	if s == Unknown {
		return "/"
	}
	return "/" + string(s)
}

// ParseScreen maps a route path to its screen. "/" is the login screen and
// "/selection/<movieId>" is the selection screen.
func ParseScreen(path string) Screen {
	p := strings.Trim(path, "/")
	switch {
	case p == "" || p == "login":
		return Login
	case p == "booking":
		return Booking
	case p == "activity":
		return Activity
	case p == "selection" || strings.HasPrefix(p, "selection/"):
		return Selection
	default:
		return Unknown
	}
}

// Request is a screen-entry attempt. Movie is the transient payload carried
// into the selection screen; it is never persisted.
type Request struct {
	Screen Screen
	Movie  *models.Movie
}

// Decision is the outcome of an entry attempt.
type Decision struct {
	Allowed  bool   `json:"allowed"`
	Screen   Screen `json:"screen"`
	Redirect Screen `json:"redirect,omitempty"`
}

// SessionReader exposes the current session state.
type SessionReader interface {
	IsLoggedIn() bool
}

// Guard evaluates entry requests against the session. The session is read on
// every call.
type Guard struct {
	session SessionReader
}

func NewGuard(session SessionReader) *Guard {
	return &Guard{session: session}
}

// Enter decides a single entry attempt.
func (g *Guard) Enter(req Request) Decision {
	if req.Screen == Selection && req.Movie == nil {
		return redirect(req.Screen, Booking)
	}

	if !g.session.IsLoggedIn() {
		if req.Screen == Login {
			return Decision{Allowed: true, Screen: Login}
		}
		return redirect(req.Screen, Login)
	}

	switch req.Screen {
	case Booking, Activity, Selection:
		return Decision{Allowed: true, Screen: req.Screen}
	default:
		return redirect(req.Screen, Booking)
	}
}

// maxRedirects bounds Resolve. Every rule converges in two hops.
const maxRedirects = 4

// Resolve follows redirects from req until a screen is allowed and returns
// that final decision. The movie payload is dropped on redirect.
func (g *Guard) Resolve(req Request) Decision {
	d := g.Enter(req)
	for i := 0; !d.Allowed && i < maxRedirects; i++ {
		d = g.Enter(Request{Screen: d.Redirect})
	}
	return d
}

func redirect(from, to Screen) Decision {
	return Decision{Allowed: false, Screen: from, Redirect: to}
}
