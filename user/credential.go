package user

import (
	"encoding/base64"
	"time"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
)

// Credential is one registered passkey as stored by the relying party.
//
// The embedded webauthn.Credential carries the cryptographic material the
// client only round trips: public key, attestation type, transport hints,
// ceremony flags, and the authenticator descriptor with its sign counter.
// The remaining fields are presentation metadata added by the server.
type Credential struct {
	webauthn.Credential
	DisplayName string    `json:"displayName,omitempty"`
	LastUsedAt  time.Time `json:"lastUsedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Key returns the credential id in the encoding used for lookups and wire
// comparisons.
func (c Credential) Key() string {
	return base64.RawURLEncoding.EncodeToString(c.ID)
}

// CloneCredentials returns a deep copy of a credential set. The server gives
// no ordering guarantee, but whatever order arrived is preserved in the copy.
func CloneCredentials(credentials []Credential) []Credential {
	if credentials == nil {
		return nil
	}
	copied := make([]Credential, len(credentials))
	for i, credential := range credentials {
		copied[i] = credential
		copied[i].ID = append([]byte(nil), credential.ID...)
		copied[i].PublicKey = append([]byte(nil), credential.PublicKey...)
		copied[i].Transport = append([]protocol.AuthenticatorTransport(nil), credential.Transport...)
		copied[i].Authenticator.AAGUID = append([]byte(nil), credential.Authenticator.AAGUID...)
	}
	return copied
}
