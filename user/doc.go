// Package user defines the identity records exchanged with the relying party.
//
// It owns the User and Credential value types plus the pure helpers the
// settings flows need: display-name normalization and copy-on-write mutations
// of the credential set. No field is computed client-side; everything round
// trips through the relying-party wire format.
package user
