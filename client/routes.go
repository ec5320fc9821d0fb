package client

import "strings"

type Page string

const (
	PageHome     Page = "home"
	PageLogin    Page = "login"
	PageSignup   Page = "signup"
	PageSettings Page = "settings"
	PageProfile  Page = "profile"
	PageNotFound Page = "not-found"
)

// Resolve maps a UI path to the page to render for the given session.
// Pages that need a login fall back to the login page, and the login and
// signup pages send an authenticated user home.
func Resolve(path string, s *Session) Page {
	authed := s != nil && s.Authenticated()

	switch normalizePath(path) {
	case "/":
		if authed {
			return PageHome
		}
		return PageLogin
	case "/signup":
		if authed {
			return PageHome
		}
		return PageSignup
	case "/login":
		if authed {
			return PageHome
		}
		return PageLogin
	case "/settings":
		return PageSettings
	case "/profile":
		if authed {
			return PageProfile
		}
		return PageLogin
	default:
		return PageNotFound
	}
}

func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return "/"
	}
	return path
}
