//go:build js && wasm

// Package webauthnjs bridges authn.Authenticator to the browser WebAuthn API
// for wasm builds.
//
// Options cross the boundary through PublicKeyCredential.parseCreationOptionsFromJSON
// and parseRequestOptionsFromJSON, and results come back through toJSON, so all
// binary fields stay base64url-encoded JSON on the Go side.
package webauthnjs

import (
	"context"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/go-webauthn/webauthn/protocol"

	"github.com/louisbranch/retroboard/authn"
)

// Authenticator invokes navigator.credentials against the current page.
type Authenticator struct{}

// New returns the browser-backed authenticator, or ErrCeremonyUnsupported
// when the page lacks the WebAuthn JSON bridge.
func New() (*Authenticator, error) {
	pkc := js.Global().Get("PublicKeyCredential")
	if pkc.IsUndefined() {
		return nil, authn.ErrCeremonyUnsupported
	}
	if pkc.Get("parseCreationOptionsFromJSON").IsUndefined() || pkc.Get("parseRequestOptionsFromJSON").IsUndefined() {
		return nil, authn.ErrCeremonyUnsupported
	}
	return &Authenticator{}, nil
}

// Create implements authn.Authenticator.
func (a *Authenticator) Create(ctx context.Context, options *protocol.CredentialCreation) (*protocol.CredentialCreationResponse, error) {
	parsed, err := parseOptions("parseCreationOptionsFromJSON", options.Response)
	if err != nil {
		return nil, err
	}

	result, err := invokeCeremony(ctx, "create", parsed, js.Undefined())
	if err != nil {
		return nil, err
	}

	var response protocol.CredentialCreationResponse
	if err := decodeCredential(result, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Get implements authn.Authenticator.
func (a *Authenticator) Get(ctx context.Context, options *protocol.CredentialAssertion, conditional bool) (*protocol.CredentialAssertionResponse, error) {
	parsed, err := parseOptions("parseRequestOptionsFromJSON", options.Response)
	if err != nil {
		return nil, err
	}

	mediation := js.Undefined()
	if conditional {
		mediation = js.ValueOf("conditional")
	}
	result, err := invokeCeremony(ctx, "get", parsed, mediation)
	if err != nil {
		return nil, err
	}

	var response protocol.CredentialAssertionResponse
	if err := decodeCredential(result, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func parseOptions(parser string, options any) (js.Value, error) {
	payload, err := json.Marshal(options)
	if err != nil {
		return js.Undefined(), fmt.Errorf("encode ceremony options: %w", err)
	}
	raw := js.Global().Get("JSON").Call("parse", string(payload))

	parsed, err := call(js.Global().Get("PublicKeyCredential"), parser, raw)
	if err != nil {
		return js.Undefined(), fmt.Errorf("parse ceremony options: %w", err)
	}
	return parsed, nil
}

func invokeCeremony(ctx context.Context, method string, publicKey, mediation js.Value) (js.Value, error) {
	credentials := js.Global().Get("navigator").Get("credentials")
	if credentials.IsUndefined() {
		return js.Undefined(), authn.ErrCeremonyUnsupported
	}

	controller := js.Global().Get("AbortController").New()
	request := map[string]any{"publicKey": publicKey, "signal": controller.Get("signal")}
	if !mediation.IsUndefined() {
		request["mediation"] = mediation
	}

	promise, err := call(credentials, method, js.ValueOf(request))
	if err != nil {
		return js.Undefined(), mapCeremonyError(err)
	}
	result, err := await(ctx, promise, controller)
	if err != nil {
		return js.Undefined(), mapCeremonyError(err)
	}
	return result, nil
}

func decodeCredential(credential js.Value, target any) error {
	jsonValue, err := call(credential, "toJSON")
	if err != nil {
		return fmt.Errorf("serialize credential: %w", err)
	}
	payload := js.Global().Get("JSON").Call("stringify", jsonValue).String()
	if err := json.Unmarshal([]byte(payload), target); err != nil {
		return fmt.Errorf("decode credential: %w", err)
	}
	return nil
}

// domError carries the DOMException identity of a rejected ceremony.
type domError struct {
	name    string
	message string
}

func (e *domError) Error() string {
	return fmt.Sprintf("webauthn %s: %s", e.name, e.message)
}

func mapCeremonyError(err error) error {
	dom, ok := err.(*domError)
	if !ok {
		return err
	}
	switch dom.name {
	case "NotAllowedError", "AbortError":
		return authn.ErrCeremonyCancelled
	case "NotSupportedError", "SecurityError":
		return authn.ErrCeremonyUnsupported
	}
	return err
}

func jsError(value js.Value) error {
	name := "Error"
	message := ""
	if value.Type() == js.TypeObject || value.Type() == js.TypeFunction {
		if n := value.Get("name"); n.Type() == js.TypeString {
			name = n.String()
		}
		if m := value.Get("message"); m.Type() == js.TypeString {
			message = m.String()
		}
	} else {
		message = value.String()
	}
	return &domError{name: name, message: message}
}

// call invokes a JS method and converts thrown exceptions into errors.
func call(receiver js.Value, method string, args ...js.Value) (result js.Value, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if jsErr, ok := recovered.(js.Error); ok {
				err = jsError(jsErr.Value)
				return
			}
			err = fmt.Errorf("call %s: %v", method, recovered)
		}
	}()
	callArgs := make([]any, len(args))
	for i, arg := range args {
		callArgs[i] = arg
	}
	return receiver.Call(method, callArgs...), nil
}

// await resolves a promise, aborting the ceremony when the context ends.
func await(ctx context.Context, promise js.Value, controller js.Value) (js.Value, error) {
	type outcome struct {
		value js.Value
		err   error
	}
	done := make(chan outcome, 1)

	onResolve := js.FuncOf(func(_ js.Value, args []js.Value) any {
		value := js.Undefined()
		if len(args) > 0 {
			value = args[0]
		}
		done <- outcome{value: value}
		return nil
	})
	defer onResolve.Release()
	onReject := js.FuncOf(func(_ js.Value, args []js.Value) any {
		reason := js.Undefined()
		if len(args) > 0 {
			reason = args[0]
		}
		done <- outcome{err: jsError(reason)}
		return nil
	})
	defer onReject.Release()

	promise.Call("then", onResolve, onReject)

	select {
	case result := <-done:
		return result.value, result.err
	case <-ctx.Done():
		controller.Call("abort")
		result := <-done
		if result.err != nil {
			return js.Undefined(), result.err
		}
		return js.Undefined(), ctx.Err()
	}
}
