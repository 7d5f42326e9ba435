// Package router picks the screen to show for a session state.
package router

import "github.com/dmitrijs2005/storefront/internal/client/models"

// View is a top-level screen of the app.
type View int

const (
	ViewLogin View = iota
	ViewLoading
	ViewProfile
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewProfile:
		return "profile"
	default:
		return "login"
	}
}

// Select maps a session snapshot to its view. A session in flight shows
// the loading view rather than switching early.
func Select(s models.Snapshot) View {
	switch s.Status {
	case models.StatusAuthenticating:
		return ViewLoading
	case models.StatusAuthenticated:
		return ViewProfile
	default:
		return ViewLogin
	}
}
