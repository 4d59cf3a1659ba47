// Package authn abstracts the platform authenticator.
//
// The real ceremony runs inside the browser's WebAuthn implementation; this
// package only defines the seam the ceremony coordinator drives. Payloads
// stay in the go-webauthn wire shapes and are relayed to the relying party
// without inspection.
package authn

import (
	"context"

	"github.com/go-webauthn/webauthn/protocol"

	"github.com/louisbranch/retroboard/apperrors"
)

var (
	// ErrCeremonyCancelled indicates the user or platform aborted the
	// authenticator interaction.
	ErrCeremonyCancelled = apperrors.New(apperrors.CodeCeremonyCancelled, "authenticator ceremony was cancelled")
	// ErrCeremonyUnsupported indicates the platform lacks the required
	// WebAuthn capability.
	ErrCeremonyUnsupported = apperrors.New(apperrors.CodeCeremonyUnsupported, "platform does not support webauthn ceremonies")
)

// Authenticator drives one WebAuthn interaction with the platform.
//
// Create and Get may suspend indefinitely while the platform waits for user
// interaction; cancellation surfaces as ErrCeremonyCancelled, not as a
// transport failure.
type Authenticator interface {
	// Create asks the platform to mint a new credential for the given
	// creation options and returns the signed attestation.
	Create(ctx context.Context, options *protocol.CredentialCreation) (*protocol.CredentialCreationResponse, error)

	// Get asks the platform to sign the given assertion challenge.
	// When conditional is true the platform surfaces the credential picker
	// in autofill mode; the protocol exchange is unchanged.
	Get(ctx context.Context, options *protocol.CredentialAssertion, conditional bool) (*protocol.CredentialAssertionResponse, error)
}
