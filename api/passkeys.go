package api

import (
	"context"
	"net/http"

	"github.com/go-webauthn/webauthn/protocol"

	"github.com/louisbranch/retroboard/user"
)

// BeginRegistration fetches the creation options for registering a new
// passkey on the signed-in user's authenticator.
func (c *Client) BeginRegistration(ctx context.Context) (*protocol.CredentialCreation, error) {
	var creation protocol.CredentialCreation
	err := c.do(ctx, "begin registration", http.MethodGet, "/user/passkeys/begin-registration", nil, func(resp *http.Response) error {
		if resp.StatusCode != http.StatusOK {
			return rejected("begin registration", resp.StatusCode)
		}
		return decodeJSON(resp, "begin registration", &creation)
	})
	if err != nil {
		return nil, err
	}
	return &creation, nil
}

// FinishRegistration submits the authenticator's attestation and returns the
// user's updated credential set, including the new passkey.
func (c *Client) FinishRegistration(ctx context.Context, attestation *protocol.CredentialCreationResponse) ([]user.Credential, error) {
	var credentials []user.Credential
	err := c.do(ctx, "finish registration", http.MethodPost, "/user/passkeys/finish-registration", attestation, func(resp *http.Response) error {
		if resp.StatusCode != http.StatusOK {
			return rejected("finish registration", resp.StatusCode)
		}
		return decodeJSON(resp, "finish registration", &credentials)
	})
	if err != nil {
		return nil, err
	}
	return credentials, nil
}
