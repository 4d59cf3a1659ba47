package user

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
)

func testCredential(id string) Credential {
	return Credential{
		Credential: webauthn.Credential{
			ID:              []byte(id),
			PublicKey:       []byte("public-key-" + id),
			AttestationType: "none",
			Transport:       []protocol.AuthenticatorTransport{protocol.Internal},
			Flags: webauthn.CredentialFlags{
				UserPresent:  true,
				UserVerified: true,
			},
			Authenticator: webauthn.Authenticator{
				AAGUID:    []byte{0x01, 0x02, 0x03, 0x04},
				SignCount: 7,
			},
		},
	}
}

func TestCredentialWireRoundTrip(t *testing.T) {
	original := testCredential("credential-x")
	original.DisplayName = "Phone"
	original.CreatedAt = time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	original.LastUsedAt = time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	original.Authenticator.CloneWarning = true

	payload, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal credential: %v", err)
	}

	var decoded Credential
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal credential: %v", err)
	}

	if decoded.Key() != original.Key() {
		t.Fatalf("expected id %q, got %q", original.Key(), decoded.Key())
	}
	if string(decoded.Authenticator.AAGUID) != string(original.Authenticator.AAGUID) {
		t.Fatal("expected aaguid to survive the round trip")
	}
	if decoded.Authenticator.SignCount != original.Authenticator.SignCount {
		t.Fatalf("expected sign count %d, got %d", original.Authenticator.SignCount, decoded.Authenticator.SignCount)
	}
	if decoded.DisplayName != "Phone" {
		t.Fatalf("expected display name to survive, got %q", decoded.DisplayName)
	}
	if !decoded.CreatedAt.Equal(original.CreatedAt) || !decoded.LastUsedAt.Equal(original.LastUsedAt) {
		t.Fatal("expected timestamps to survive the round trip")
	}
	if !decoded.Authenticator.CloneWarning {
		t.Fatal("expected clone warning flag to survive")
	}
}

func TestCloneCredentialsNil(t *testing.T) {
	if CloneCredentials(nil) != nil {
		t.Fatal("expected nil credential set to stay nil")
	}
}
