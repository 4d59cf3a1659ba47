package session

import "github.com/louisbranch/retroboard/user"

// Phase describes where the session stands relative to the relying party.
type Phase string

const (
	// PhaseUnknown means the initial who-am-I probe has not completed yet.
	PhaseUnknown Phase = "unknown"
	// PhaseUnauthenticated means the server reported no valid session.
	PhaseUnauthenticated Phase = "unauthenticated"
	// PhaseAuthenticated means a user is signed in.
	PhaseAuthenticated Phase = "authenticated"
)

// State is the session snapshot handed to subscribers.
//
// InitializationSucceeded stays nil until the initial probe against the
// relying party completes, then reports whether it could be reached. The
// session cookie itself is invisible to the client, so the server's answer is
// authoritative.
type State struct {
	Phase                   Phase
	User                    *user.User
	InitializationSucceeded *bool
}

// NewState returns the empty session created at process start.
func NewState() State {
	return State{Phase: PhaseUnknown}
}

func (s State) clone() State {
	copied := s
	if s.User != nil {
		cloned := s.User.Clone()
		copied.User = &cloned
	}
	if s.InitializationSucceeded != nil {
		value := *s.InitializationSucceeded
		copied.InitializationSucceeded = &value
	}
	return copied
}

// Reduce applies an event to the current state and returns the next state.
// It performs no I/O and never mutates its input.
func Reduce(state State, event Event) State {
	switch e := event.(type) {
	case SignedIn:
		next := state.clone()
		signedIn := e.User.Clone()
		next.User = &signedIn
		next.Phase = PhaseAuthenticated
		return next
	case SignedOut:
		next := state.clone()
		next.User = nil
		next.Phase = PhaseUnauthenticated
		return next
	case CredentialsUpdated:
		if state.Phase != PhaseAuthenticated || state.User == nil {
			return state
		}
		next := state.clone()
		updated := e.User.Clone()
		updated.Credentials = user.CloneCredentials(e.Credentials)
		next.User = &updated
		return next
	case InitializationCompleted:
		next := state.clone()
		succeeded := e.Succeeded
		next.InitializationSucceeded = &succeeded
		if next.Phase == PhaseUnknown && next.User == nil {
			next.Phase = PhaseUnauthenticated
		}
		return next
	default:
		return state
	}
}
