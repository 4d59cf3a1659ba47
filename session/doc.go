// Package session tracks the authenticated user on the client.
//
// State is advanced only through Reduce, a pure transition function over the
// events emitted by the ceremony coordinator. Store serializes dispatches and
// hands immutable snapshots to subscribers, so the rest of the client never
// shares mutable session data.
package session
