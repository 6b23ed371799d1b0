// Package viewstate carries the per-visitor UI state (the secret reveal
// flag and the home counter) between requests in a signed session cookie.
package viewstate

import (
	"context"
	"net/http"
)

// State is the App-owned view state. The zero value is the initial state.
type State struct {
	Secret bool
	Count  int64
}

// Toggle flips the secret flag.
func (s State) Toggle() State {
	s.Secret = !s.Secret
	return s
}

// Increment adds one to the counter.
func (s State) Increment() State {
	s.Count++
	return s
}

// Decrement subtracts one from the counter.
func (s State) Decrement() State {
	s.Count--
	return s
}

type ctxKey string

const stateKey ctxKey = "viewState"

// WithState returns a copy of ctx carrying st.
func WithState(ctx context.Context, st State) context.Context {
	return context.WithValue(ctx, stateKey, st)
}

// FromRequest returns the state loaded by Manager.LoadState, or the zero
// State when the middleware did not run.
func FromRequest(r *http.Request) State {
	st, _ := r.Context().Value(stateKey).(State)
	return st
}
