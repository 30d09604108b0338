// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokcell

// CounterToken is the runtime-counted strategy: construction always
// succeeds, issuing the next value of a process-wide monotonic counter, and
// many instances of one kind may coexist, each with a distinct identity.
// Presenting the wrong instance to a cell yields a [MismatchError] carrying
// both identities.
type CounterToken[K any] struct {
	id Identifier
}

// NewCounter constructs a counter token of kind K. It never fails; the
// error is always nil and exists for surface uniformity with the other
// strategies.
func NewCounter[K any]() (*CounterToken[K], error) {
	return &CounterToken[K]{id: nextIdentifier()}, nil
}

// WithCounter constructs a counter token of kind K and passes it to body,
// returning body's result. The error is always nil.
func WithCounter[K, R any](body func(*CounterToken[K]) R) (R, error) {
	tok, _ := NewCounter[K]()
	return body(tok), nil
}

// Identifier returns the counter value issued at construction.
func (t *CounterToken[K]) Identifier() Identifier {
	return t.id
}

// Compare reports whether id matches this token's issued identity.
// On mismatch it returns a [MismatchError] carrying both identities.
func (t *CounterToken[K]) Compare(id Identifier) error {
	if id != t.id {
		return &MismatchError{Cell: id, Token: t.id}
	}
	return nil
}

type runtimeKind struct{}

// RuntimeToken is a predeclared counter kind, for callers that want
// runtime-checked tokens without declaring a kind of their own.
type RuntimeToken = CounterToken[runtimeKind]

// NewRuntimeToken constructs a [RuntimeToken]. It never fails.
func NewRuntimeToken() *RuntimeToken {
	tok, _ := NewCounter[runtimeKind]()
	return tok
}
