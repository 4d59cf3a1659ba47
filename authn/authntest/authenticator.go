// Package authntest provides a scripted authenticator for tests.
package authntest

import (
	"context"

	"github.com/go-webauthn/webauthn/protocol"
)

// Authenticator returns scripted responses and records how it was driven.
type Authenticator struct {
	CreateResponse *protocol.CredentialCreationResponse
	CreateErr      error
	GetResponse    *protocol.CredentialAssertionResponse
	GetErr         error

	CreateCalls      int
	GetCalls         int
	LastCreation     *protocol.CredentialCreation
	LastAssertion    *protocol.CredentialAssertion
	LastConditional  bool
	BlockUntilCancel bool
}

// Create implements authn.Authenticator.
func (a *Authenticator) Create(ctx context.Context, options *protocol.CredentialCreation) (*protocol.CredentialCreationResponse, error) {
	a.CreateCalls++
	a.LastCreation = options
	if a.BlockUntilCancel {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if a.CreateErr != nil {
		return nil, a.CreateErr
	}
	return a.CreateResponse, nil
}

// Get implements authn.Authenticator.
func (a *Authenticator) Get(ctx context.Context, options *protocol.CredentialAssertion, conditional bool) (*protocol.CredentialAssertionResponse, error) {
	a.GetCalls++
	a.LastAssertion = options
	a.LastConditional = conditional
	if a.BlockUntilCancel {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if a.GetErr != nil {
		return nil, a.GetErr
	}
	return a.GetResponse, nil
}
