// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokcell

// Guard is a transient proof of read access to a cell's value, produced by
// a successful comparison in [Cell.TryGuard]. It carries the cell and the
// token together so the token can be recovered, and it never re-runs the
// comparison. A Guard holds no runtime state; dropping it releases nothing.
type Guard[T any, Tok Token] struct {
	cell  *Cell[T, Tok]
	token Tok
}

// Value returns a copy of the guarded value.
func (g Guard[T, Tok]) Value() T {
	return g.cell.value
}

// Ptr returns the guarded value for reading. The pointer must not be
// written through; use a [GuardMut] for mutation.
func (g Guard[T, Tok]) Ptr() *T {
	return &g.cell.value
}

// Token recovers the token that produced this guard.
func (g Guard[T, Tok]) Token() Tok {
	return g.token
}

// GuardMut is a transient proof of write access to a cell's value, produced
// by a successful comparison in [Cell.TryGuardMut].
type GuardMut[T any, Tok Token] struct {
	cell  *Cell[T, Tok]
	token Tok
}

// Value returns a copy of the guarded value.
func (g GuardMut[T, Tok]) Value() T {
	return g.cell.value
}

// Ptr returns the guarded value for reading or writing.
func (g GuardMut[T, Tok]) Ptr() *T {
	return &g.cell.value
}

// Set replaces the guarded value.
func (g GuardMut[T, Tok]) Set(v T) {
	g.cell.value = v
}

// Token recovers the token that produced this guard.
func (g GuardMut[T, Tok]) Token() Tok {
	return g.token
}
