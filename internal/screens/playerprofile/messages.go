package playerprofile

import "github.com/abhisek/valodiag/internal/profile"

// profileLoadedMsg carries the current user's stored profile.
type profileLoadedMsg struct {
	username string
	profile  *profile.Profile
	summary  profile.Summary
	loggedIn bool
}

// statusMsg reports the outcome of an action.
type statusMsg struct {
	text  string
	isErr bool
}
