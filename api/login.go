package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-webauthn/webauthn/protocol"

	"github.com/louisbranch/retroboard/user"
)

// AnonymousSignIn is the identity returned for a fresh anonymous session.
type AnonymousSignIn struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SignOut deletes the server-side session.
//
// The session cookie is http-only, so a server round trip is the only way to
// clear it. Any reachable response counts as success.
func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, "sign out", http.MethodDelete, "/login", nil, func(*http.Response) error {
		return nil
	})
}

// SignInAnonymously creates an anonymous session with the given display name.
func (c *Client) SignInAnonymously(ctx context.Context, name string) (AnonymousSignIn, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}

	var signedIn AnonymousSignIn
	err := c.do(ctx, "sign in", http.MethodPost, "/login/anonymous", body, func(resp *http.Response) error {
		if resp.StatusCode != http.StatusCreated {
			return rejected("sign in", resp.StatusCode)
		}
		return decodeJSON(resp, "sign in", &signedIn)
	})
	if err != nil {
		return AnonymousSignIn{}, err
	}
	return signedIn, nil
}

// ProviderRedirectURL builds the browser redirect target for an OAuth
// provider sign-in. originURL is carried in the state parameter so the
// provider callback can return the user to where they started.
func (c *Client) ProviderRedirectURL(provider, originURL string) string {
	return c.endpoint("/login/"+url.PathEscape(provider)) + "?state=" + url.QueryEscape(originURL)
}

// BeginAuthentication fetches the assertion challenge for a passkey login.
// The cryptographic payload inside stays opaque to the client.
func (c *Client) BeginAuthentication(ctx context.Context) (*protocol.CredentialAssertion, error) {
	var assertion protocol.CredentialAssertion
	err := c.do(ctx, "begin authentication", http.MethodGet, "/login/passkeys/begin-authentication", nil, func(resp *http.Response) error {
		if resp.StatusCode != http.StatusOK {
			return rejected("begin authentication", resp.StatusCode)
		}
		return decodeJSON(resp, "begin authentication", &assertion)
	})
	if err != nil {
		return nil, err
	}
	return &assertion, nil
}

// FinishAuthentication submits the signed assertion and returns the
// authenticated user.
func (c *Client) FinishAuthentication(ctx context.Context, assertion *protocol.CredentialAssertionResponse) (user.User, error) {
	var signedIn user.User
	err := c.do(ctx, "finish authentication", http.MethodPost, "/login/passkeys/finish-authentication", assertion, func(resp *http.Response) error {
		if resp.StatusCode != http.StatusOK {
			return rejected("finish authentication", resp.StatusCode)
		}
		return decodeJSON(resp, "finish authentication", &signedIn)
	})
	if err != nil {
		return user.User{}, err
	}
	return signedIn, nil
}
