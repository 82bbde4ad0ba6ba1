// Package routeguard decides, for every navigation, whether a path may render
// for the current session. The decision is a pure function of (path, session
// presence) and must be re-evaluated on each navigation, never cached.
package routeguard

import (
	"net/url"
	"strings"
)

const (
	protectedPrefix = "/dashboard"
	signInPath      = "/login"
	signUpPath      = "/register"
	dashboardRoot   = "/dashboard"

	// RedirectedFromParam carries the originally requested path through the
	// sign-in redirect.
	RedirectedFromParam = "redirectedFrom"
)

// Decision is the outcome of evaluating one navigation.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Evaluate applies the access rules in order: unauthenticated visitors are
// sent from protected paths to sign-in (keeping the requested path),
// authenticated visitors are sent from the auth pages to the dashboard,
// everything else is allowed.
func Evaluate(path string, authenticated bool) Decision {
	if !authenticated && isProtected(path) {
		q := url.Values{RedirectedFromParam: {path}}
		return Decision{RedirectTo: signInPath + "?" + q.Encode()}
	}

	if authenticated && (path == signInPath || path == signUpPath) {
		return Decision{RedirectTo: dashboardRoot}
	}

	return Decision{Allow: true}
}

func isProtected(path string) bool {
	return strings.HasPrefix(path, protectedPrefix)
}
