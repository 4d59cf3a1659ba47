package session

import "github.com/louisbranch/retroboard/user"

// Event is a session transition emitted by the ceremony coordinator.
type Event interface {
	isSessionEvent()
}

// SignedIn reports a successful sign-in with the user the server returned.
type SignedIn struct {
	User user.User
}

// SignedOut reports that the session cookie was cleared server-side.
type SignedOut struct{}

// CredentialsUpdated replaces the signed-in user's credential set after a
// registration, rename, or removal.
type CredentialsUpdated struct {
	User        user.User
	Credentials []user.Credential
}

// InitializationCompleted reports the outcome of the initial who-am-I probe.
type InitializationCompleted struct {
	Succeeded bool
}

func (SignedIn) isSessionEvent()                {}
func (SignedOut) isSessionEvent()               {}
func (CredentialsUpdated) isSessionEvent()      {}
func (InitializationCompleted) isSessionEvent() {}
