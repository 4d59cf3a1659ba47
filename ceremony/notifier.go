package ceremony

import (
	"log"

	"github.com/louisbranch/retroboard/apperrors"
	"github.com/louisbranch/retroboard/internal/platform/id"
)

// Stable message keys for user-facing notifications. The UI resolves them
// through its translation catalog.
const (
	KeyAuthenticationError       = "toast.authenticationError"
	KeySignOutFailed             = "toast.signOutFailed"
	KeyPasskeyRegistrationFailed = "toast.passkeyRegistrationFailed"
	KeyPasskeySignInFailed       = "toast.passkeySignInFailed"
	KeyPasskeyUpdateFailed       = "toast.passkeyUpdateFailed"
	KeyProfileUpdateFailed       = "toast.profileUpdateFailed"
	KeyCredentialRefreshFailed   = "toast.credentialRefreshFailed"
	KeyCeremonyCancelled         = "toast.ceremonyCancelled"
	KeyPasskeysUnsupported       = "toast.passkeysUnsupported"
)

// Notification is one user-facing failure report.
type Notification struct {
	ID  string
	Key string
	Err error
}

// Notifier receives failure notifications for display to the user.
type Notifier interface {
	Notify(Notification)
}

// LogNotifier writes notifications to the standard logger. It is the default
// when no notifier is injected, so failures are never swallowed silently.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(n Notification) {
	log.Printf("auth notification %s: %v", n.Key, n.Err)
}

// notificationKey picks the message key for a failure: ceremony-level
// cancellation and capability errors have dedicated keys, everything else
// uses the flow's fallback key.
func notificationKey(err error, fallback string) string {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeCeremonyCancelled:
		return KeyCeremonyCancelled
	case apperrors.CodeCeremonyUnsupported:
		return KeyPasskeysUnsupported
	}
	return fallback
}

func newNotification(key string, err error) Notification {
	instanceID, idErr := id.NewID()
	if idErr != nil {
		instanceID = key
	}
	return Notification{ID: instanceID, Key: key, Err: err}
}
