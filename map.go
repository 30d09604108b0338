// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokcell

import "sync/atomic"

// TokenMap is an operation bound to a cell, waiting to be applied by
// providing a proof of read access. It is built eagerly by [Map] and never
// auto-applied: discarding it without applying is legal but the closure
// silently never runs.
//
// Affine semantics: a TokenMap may be applied at most once. Apply panics on
// reuse; TryApply returns [ErrConsumed].
type TokenMap[T, U any, Tok Token] struct {
	cell *Cell[T, Tok]
	f    func(Guard[T, Tok]) U
	used atomic.Uintptr
}

// Map binds f to cell without touching any token. The closure runs only
// when a token is later presented to Apply or TryApply, so a computation
// can be assembled where the token is not yet available — for example
// across an abstraction boundary — and executed once it is obtained,
// gated behind the same comparison as a direct borrow.
func Map[T, U any, Tok Token](cell *Cell[T, Tok], f func(Guard[T, Tok]) U) *TokenMap[T, U, Tok] {
	return &TokenMap[T, U, Tok]{cell: cell, f: f}
}

// Apply runs the operation with a guard for tok's access.
// Panics if tok does not match the cell or if the map was already consumed;
// reaching either panic is a fundamental error in the program.
func (m *TokenMap[T, U, Tok]) Apply(tok Tok) U {
	if m.used.Add(1) != 1 {
		panic("tokcell: deferred map applied twice")
	}
	g, err := m.cell.TryGuard(tok)
	if err != nil {
		panic("tokcell: deferred map applied with wrong token: " + err.Error())
	}
	return m.f(g)
}

// TryApply attempts to run the operation with a guard for tok's access.
// On comparison failure the map remains unconsumed, so the caller may retry
// with a different token; the closure is not run.
func (m *TokenMap[T, U, Tok]) TryApply(tok Tok) (U, error) {
	var zero U
	if m.used.Load() != 0 {
		return zero, ErrConsumed
	}
	g, err := m.cell.TryGuard(tok)
	if err != nil {
		return zero, err
	}
	if m.used.Add(1) != 1 {
		return zero, ErrConsumed
	}
	return m.f(g), nil
}

// Discard marks the map consumed without running the operation.
func (m *TokenMap[T, U, Tok]) Discard() {
	m.used.Store(1)
}

// TokenMapMut is an operation bound to a cell, waiting to be applied by
// providing a proof of write access. See [TokenMap] for the application
// discipline; unlike the read form, a failed TryApply consumes the map,
// because the exclusive token presentation cannot be handed back.
type TokenMapMut[T, U any, Tok Token] struct {
	cell *Cell[T, Tok]
	f    func(GuardMut[T, Tok]) U
	used atomic.Uintptr
}

// MapMut binds f to cell without touching any token. The closure runs with
// write access only when a token is later presented to Apply or TryApply.
func MapMut[T, U any, Tok Token](cell *Cell[T, Tok], f func(GuardMut[T, Tok]) U) *TokenMapMut[T, U, Tok] {
	return &TokenMapMut[T, U, Tok]{cell: cell, f: f}
}

// Apply runs the operation with a mutable guard for tok's access.
// Panics if tok does not match the cell or if the map was already consumed.
// The caller must hold tok exclusively for the duration of the call.
func (m *TokenMapMut[T, U, Tok]) Apply(tok Tok) U {
	if m.used.Add(1) != 1 {
		panic("tokcell: deferred map applied twice")
	}
	g, err := m.cell.TryGuardMut(tok)
	if err != nil {
		panic("tokcell: deferred map applied with wrong token: " + err.Error())
	}
	return m.f(g)
}

// TryApply attempts to run the operation with a mutable guard for tok's
// access. The map is consumed whether or not the comparison succeeds; on
// failure the closure is not run and the comparison error is returned.
func (m *TokenMapMut[T, U, Tok]) TryApply(tok Tok) (U, error) {
	var zero U
	if m.used.Add(1) != 1 {
		return zero, ErrConsumed
	}
	g, err := m.cell.TryGuardMut(tok)
	if err != nil {
		return zero, err
	}
	return m.f(g), nil
}

// Discard marks the map consumed without running the operation.
func (m *TokenMapMut[T, U, Tok]) Discard() {
	m.used.Store(1)
}
