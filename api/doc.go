// Package api is the typed client for the relying-party HTTP endpoints.
//
// Each operation issues exactly one request (UpdateProfile is the documented
// exception), carries the ambient session cookie through the client's cookie
// jar, and maps failures onto the apperrors taxonomy: transport failures wrap
// their cause under CodeTransport, non-success statuses become CodeRejected
// (CodeNotFound for 404). Nothing here retries and nothing inspects the
// cryptographic payloads it moves.
package api
