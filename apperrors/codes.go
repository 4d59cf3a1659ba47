package apperrors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Transport and server errors
	CodeTransport Code = "TRANSPORT_FAILURE"
	CodeRejected  Code = "REQUEST_REJECTED"
	CodeNotFound  Code = "NOT_FOUND"

	// Ceremony errors
	CodeCeremonyCancelled   Code = "CEREMONY_CANCELLED"
	CodeCeremonyUnsupported Code = "CEREMONY_UNSUPPORTED"
	CodeCeremonyInFlight    Code = "CEREMONY_IN_FLIGHT"

	// User errors
	CodeUserEmptyDisplayName   Code = "USER_EMPTY_DISPLAY_NAME"
	CodeUserInvalidDisplayName Code = "USER_INVALID_DISPLAY_NAME"
	CodeUserNotAuthenticated   Code = "USER_NOT_AUTHENTICATED"

	// Credential errors
	CodeCredentialEmptyID Code = "CREDENTIAL_EMPTY_ID"
)
