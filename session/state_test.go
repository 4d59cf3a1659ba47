package session

import (
	"testing"

	"github.com/go-webauthn/webauthn/webauthn"

	"github.com/louisbranch/retroboard/user"
)

func testUser(credentialIDs ...string) user.User {
	u := user.User{ID: "user-1", Name: "Martha"}
	for _, id := range credentialIDs {
		u.Credentials = append(u.Credentials, user.Credential{
			Credential: webauthn.Credential{ID: []byte(id), PublicKey: []byte("pk-" + id)},
		})
	}
	return u
}

func TestReduceSignedIn(t *testing.T) {
	state := NewState()

	next := Reduce(state, SignedIn{User: testUser("credential-x")})
	if next.Phase != PhaseAuthenticated {
		t.Fatalf("expected authenticated phase, got %v", next.Phase)
	}
	if next.User == nil || next.User.ID != "user-1" {
		t.Fatal("expected signed-in user to be stored")
	}
	if len(next.User.Credentials) != 1 {
		t.Fatalf("expected one credential, got %d", len(next.User.Credentials))
	}
	if state.Phase != PhaseUnknown || state.User != nil {
		t.Fatal("expected input state to stay unchanged")
	}
}

func TestReduceSignedOutClearsUser(t *testing.T) {
	state := Reduce(NewState(), SignedIn{User: testUser()})

	next := Reduce(state, SignedOut{})
	if next.Phase != PhaseUnauthenticated {
		t.Fatalf("expected unauthenticated phase, got %v", next.Phase)
	}
	if next.User != nil {
		t.Fatal("expected user to be cleared")
	}
}

func TestReduceCredentialsUpdated(t *testing.T) {
	state := Reduce(NewState(), SignedIn{User: testUser("credential-x")})

	updated := testUser("credential-x", "credential-y")
	next := Reduce(state, CredentialsUpdated{User: updated, Credentials: updated.Credentials})
	if next.Phase != PhaseAuthenticated {
		t.Fatalf("expected phase to stay authenticated, got %v", next.Phase)
	}
	if len(next.User.Credentials) != 2 {
		t.Fatalf("expected two credentials, got %d", len(next.User.Credentials))
	}
	if len(state.User.Credentials) != 1 {
		t.Fatal("expected prior state to stay unchanged")
	}
}

func TestReduceCredentialsUpdatedIgnoredWhenSignedOut(t *testing.T) {
	state := NewState()

	updated := testUser("credential-x")
	next := Reduce(state, CredentialsUpdated{User: updated, Credentials: updated.Credentials})
	if next.Phase != PhaseUnknown || next.User != nil {
		t.Fatal("expected credential update without a session to be ignored")
	}
}

func TestReduceInitializationCompleted(t *testing.T) {
	state := NewState()
	if state.InitializationSucceeded != nil {
		t.Fatal("expected initialization outcome to start unknown")
	}

	next := Reduce(state, InitializationCompleted{Succeeded: true})
	if next.InitializationSucceeded == nil || !*next.InitializationSucceeded {
		t.Fatal("expected initialization to be marked successful")
	}
	if next.Phase != PhaseUnauthenticated {
		t.Fatalf("expected probe without user to settle unauthenticated, got %v", next.Phase)
	}

	failed := Reduce(state, InitializationCompleted{Succeeded: false})
	if failed.InitializationSucceeded == nil || *failed.InitializationSucceeded {
		t.Fatal("expected initialization to be marked failed")
	}
}

func TestReduceInitializationCompletedKeepsSignedInUser(t *testing.T) {
	state := Reduce(NewState(), SignedIn{User: testUser()})

	next := Reduce(state, InitializationCompleted{Succeeded: true})
	if next.Phase != PhaseAuthenticated || next.User == nil {
		t.Fatal("expected signed-in user to survive the probe outcome")
	}
}
