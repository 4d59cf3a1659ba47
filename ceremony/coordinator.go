package ceremony

import (
	"context"
	"sync/atomic"

	"github.com/go-webauthn/webauthn/protocol"

	"github.com/louisbranch/retroboard/api"
	"github.com/louisbranch/retroboard/apperrors"
	"github.com/louisbranch/retroboard/authn"
	"github.com/louisbranch/retroboard/session"
	"github.com/louisbranch/retroboard/user"
)

// ErrCeremonyInFlight is returned when a passkey ceremony starts while
// another one is still running. The platform authenticator rejects
// concurrent ceremonies, so the second request is refused up front.
var ErrCeremonyInFlight = apperrors.New(apperrors.CodeCeremonyInFlight, "a passkey ceremony is already in flight")

// ErrNotAuthenticated is returned by flows that need a signed-in user.
var ErrNotAuthenticated = apperrors.New(apperrors.CodeUserNotAuthenticated, "no user is signed in")

// Client is the relying-party surface the coordinator drives.
// *api.Client satisfies it; tests substitute fakes.
type Client interface {
	SignOut(ctx context.Context) error
	SignInAnonymously(ctx context.Context, name string) (api.AnonymousSignIn, error)
	BeginRegistration(ctx context.Context) (*protocol.CredentialCreation, error)
	FinishRegistration(ctx context.Context, attestation *protocol.CredentialCreationResponse) ([]user.Credential, error)
	BeginAuthentication(ctx context.Context) (*protocol.CredentialAssertion, error)
	FinishAuthentication(ctx context.Context, assertion *protocol.CredentialAssertionResponse) (user.User, error)
	CurrentUser(ctx context.Context) (*user.User, error)
	UpdateUser(ctx context.Context, record user.User) (user.User, error)
	UpdateProfile(ctx context.Context, record user.User) (user.User, error)
	ProviderRedirectURL(provider, originURL string) string
}

// Coordinator sequences authentication flows and applies their outcomes to
// the session store.
type Coordinator struct {
	client        Client
	authenticator authn.Authenticator
	store         *session.Store
	notifier      Notifier
	inFlight      atomic.Bool
}

// Option customizes a Coordinator.
type Option func(*Coordinator)

// WithNotifier replaces the default log-backed notifier.
func WithNotifier(notifier Notifier) Option {
	return func(c *Coordinator) {
		c.notifier = notifier
	}
}

// New wires a coordinator to its collaborators.
func New(client Client, authenticator authn.Authenticator, store *session.Store, opts ...Option) *Coordinator {
	coordinator := &Coordinator{
		client:        client,
		authenticator: authenticator,
		store:         store,
		notifier:      LogNotifier{},
	}
	for _, opt := range opts {
		opt(coordinator)
	}
	return coordinator
}

// fail reports a flow failure once and returns the error unchanged.
func (c *Coordinator) fail(fallbackKey string, err error) error {
	c.notifier.Notify(newNotification(notificationKey(err, fallbackKey), err))
	return err
}

// acquire guards against re-entrant ceremony starts.
func (c *Coordinator) acquire() error {
	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrCeremonyInFlight
	}
	return nil
}

func (c *Coordinator) release() {
	c.inFlight.Store(false)
}

// Initialize runs the who-am-I probe and settles the session's
// initialization outcome. A reachable server answers the probe even when no
// session exists; only transport failures mark initialization as failed.
func (c *Coordinator) Initialize(ctx context.Context) error {
	current, err := c.client.CurrentUser(ctx)
	if err != nil {
		c.store.Dispatch(session.InitializationCompleted{Succeeded: false})
		return err
	}
	if current != nil {
		c.store.Dispatch(session.SignedIn{User: *current})
	}
	c.store.Dispatch(session.InitializationCompleted{Succeeded: true})
	return nil
}

// SignInAnonymously creates an anonymous session under the given display name.
func (c *Coordinator) SignInAnonymously(ctx context.Context, name string) error {
	normalized, err := user.NormalizeDisplayName(name)
	if err != nil {
		return c.fail(KeyAuthenticationError, err)
	}

	signedIn, err := c.client.SignInAnonymously(ctx, normalized)
	if err != nil {
		return c.fail(KeyAuthenticationError, err)
	}

	c.store.Dispatch(session.SignedIn{User: user.User{ID: signedIn.ID, Name: signedIn.Name}})
	return nil
}

// SignInWithProvider returns the URL the UI must navigate to for an OAuth
// provider sign-in; the provider callback re-enters through Initialize.
func (c *Coordinator) SignInWithProvider(provider, originURL string) string {
	return c.client.ProviderRedirectURL(provider, originURL)
}

// SignOut clears the server-side session and the local user.
func (c *Coordinator) SignOut(ctx context.Context) error {
	if err := c.client.SignOut(ctx); err != nil {
		return c.fail(KeySignOutFailed, err)
	}
	c.store.Dispatch(session.SignedOut{})
	return nil
}

// SignInWithPasskey runs the authentication ceremony: fetch the challenge,
// let the authenticator sign it, submit the assertion. conditional selects
// the autofill credential picker; the exchange itself is identical.
func (c *Coordinator) SignInWithPasskey(ctx context.Context, conditional bool) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	assertion, err := c.client.BeginAuthentication(ctx)
	if err != nil {
		return c.fail(KeyPasskeySignInFailed, err)
	}

	signed, err := c.authenticator.Get(ctx, assertion, conditional)
	if err != nil {
		return c.fail(KeyPasskeySignInFailed, err)
	}

	signedIn, err := c.client.FinishAuthentication(ctx, signed)
	if err != nil {
		return c.fail(KeyPasskeySignInFailed, err)
	}

	c.store.Dispatch(session.SignedIn{User: signedIn})
	return nil
}

// RegisterPasskey runs the registration ceremony for the signed-in user.
//
// Once finish-registration succeeds the new credential exists server-side;
// the follow-up refresh of the current user is reported separately on
// failure and never rolls the registration back.
func (c *Coordinator) RegisterPasskey(ctx context.Context) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	creation, err := c.client.BeginRegistration(ctx)
	if err != nil {
		return c.fail(KeyPasskeyRegistrationFailed, err)
	}

	attestation, err := c.authenticator.Create(ctx, creation)
	if err != nil {
		return c.fail(KeyPasskeyRegistrationFailed, err)
	}

	credentials, err := c.client.FinishRegistration(ctx, attestation)
	if err != nil {
		return c.fail(KeyPasskeyRegistrationFailed, err)
	}

	current, err := c.client.CurrentUser(ctx)
	if err != nil || current == nil {
		// registration already stands; fall back to the session snapshot
		snapshot := c.store.State()
		if snapshot.User != nil {
			c.store.Dispatch(session.CredentialsUpdated{User: *snapshot.User, Credentials: credentials})
		}
		c.notifier.Notify(newNotification(KeyCredentialRefreshFailed, err))
		return nil
	}

	c.store.Dispatch(session.CredentialsUpdated{User: *current, Credentials: credentials})
	return nil
}

// RemovePasskey deletes one credential from the signed-in user's set.
// Removing an id the set does not contain is a no-op.
func (c *Coordinator) RemovePasskey(ctx context.Context, credentialID string) error {
	snapshot := c.store.State()
	if snapshot.User == nil {
		return ErrNotAuthenticated
	}

	updated := snapshot.User.WithoutCredential(credentialID)
	if len(updated.Credentials) == len(snapshot.User.Credentials) {
		return nil
	}

	record, err := c.client.UpdateUser(ctx, updated)
	if err != nil {
		return c.fail(KeyPasskeyUpdateFailed, err)
	}

	c.store.Dispatch(session.CredentialsUpdated{User: record, Credentials: record.Credentials})
	return nil
}

// RenamePasskey sets the display name of one credential. Renaming an id the
// set does not contain is a no-op.
func (c *Coordinator) RenamePasskey(ctx context.Context, credentialID, name string) error {
	normalized, err := user.NormalizeDisplayName(name)
	if err != nil {
		return c.fail(KeyPasskeyUpdateFailed, err)
	}

	snapshot := c.store.State()
	if snapshot.User == nil {
		return ErrNotAuthenticated
	}
	if _, ok := snapshot.User.Credential(credentialID); !ok {
		return nil
	}

	record, err := c.client.UpdateUser(ctx, snapshot.User.WithRenamedCredential(credentialID, normalized))
	if err != nil {
		return c.fail(KeyPasskeyUpdateFailed, err)
	}

	c.store.Dispatch(session.CredentialsUpdated{User: record, Credentials: record.Credentials})
	return nil
}

// UpdateProfile changes the signed-in user's presentation fields while the
// server-side credential set is preserved.
func (c *Coordinator) UpdateProfile(ctx context.Context, name string, avatar *user.Avatar) error {
	normalized, err := user.NormalizeDisplayName(name)
	if err != nil {
		return c.fail(KeyProfileUpdateFailed, err)
	}

	snapshot := c.store.State()
	if snapshot.User == nil {
		return ErrNotAuthenticated
	}

	record := snapshot.User.Clone()
	record.Name = normalized
	record.Avatar = avatar

	updated, err := c.client.UpdateProfile(ctx, record)
	if err != nil {
		return c.fail(KeyProfileUpdateFailed, err)
	}

	c.store.Dispatch(session.SignedIn{User: updated})
	return nil
}
