// Package guard decides what a protected page does for a given auth state.
package guard

import "github.com/m04kA/SMC-CarMarketWeb/internal/domain"

// State is the auth state resolved once per request
type State int

const (
	// StateLoading means the session has not been resolved yet
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Policy is the access rule attached to a route
type Policy int

const (
	PolicyAuthenticated Policy = iota
	PolicyAdmin
)

func (p Policy) String() string {
	switch p {
	case PolicyAuthenticated:
		return "authenticated"
	case PolicyAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Outcome is what the guarded route must do
type Outcome int

const (
	OutcomeLoading Outcome = iota
	OutcomeRender
	OutcomeRedirectLogin
	OutcomeRedirectHome
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoading:
		return "loading"
	case OutcomeRender:
		return "render"
	case OutcomeRedirectLogin:
		return "redirect_login"
	case OutcomeRedirectHome:
		return "redirect_home"
	default:
		return "unknown"
	}
}

// Location returns the redirect target of the outcome, or "" when it does not redirect
func (o Outcome) Location() string {
	switch o {
	case OutcomeRedirectLogin:
		return domain.RouteLogin
	case OutcomeRedirectHome:
		return domain.RouteHome
	default:
		return ""
	}
}

// Evaluate maps auth state and roles to an outcome for the policy.
// Loading never redirects. Anonymous users go to login under both policies,
// signed-in users without the admin role go home from admin-only routes.
func Evaluate(state State, roles domain.RoleSet, policy Policy) Outcome {
	switch state {
	case StateLoading:
		return OutcomeLoading
	case StateAuthenticated:
		switch policy {
		case PolicyAuthenticated:
			return OutcomeRender
		case PolicyAdmin:
			if roles.Has(domain.RoleAdmin) {
				return OutcomeRender
			}
			return OutcomeRedirectHome
		}
	case StateUnauthenticated:
		switch policy {
		case PolicyAuthenticated, PolicyAdmin:
			return OutcomeRedirectLogin
		}
	}
	return OutcomeLoading
}
