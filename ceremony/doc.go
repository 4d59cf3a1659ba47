// Package ceremony sequences the sign-in and passkey flows.
//
// The Coordinator is a blind relay between the relying-party client and the
// platform authenticator: it fetches options, hands them to the authenticator,
// submits the signed result, and turns the outcome into one session event and,
// on failure, one notification. It never interprets the cryptographic
// payloads it shuttles; the trust boundary is the relying party and the
// authenticator.
package ceremony
