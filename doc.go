// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tokcell provides capability-gated interior mutability in Go.
//
// The core type [Cell] is a container whose value may only be read or
// mutated by presenting a matching access token. Unlike a lock, the token
// is not acquired at the access site — it is an object whose possession
// proves the caller's right to access the cell. Many cells can share one
// external synchronization mechanism (for example a single coarse lock
// protecting a whole graph of cells) while each individual access is still
// checked, cheaply, per cell.
//
// # Design Philosophy
//
// tokcell provides:
//   - Minimal but complete interfaces for tokens, cells, and guards
//   - Compile-time kind separation via phantom type parameters
//   - Allocation-free access paths (only the failure path allocates)
//
// Nothing here blocks, schedules, or waits. Contention is either impossible
// (structural uniqueness) or reported immediately as an error (runtime-checked
// uniqueness). Callers that need a wait/retry loop must build it themselves
// around repeated construction attempts.
//
// # Kind Separation
//
// Every token strategy takes a phantom kind parameter K (a value of K is
// never created; the type only brands the token). A [Cell] is parameterized
// by the concrete token type, so presenting a token of a different kind is a
// compile error:
//
//	type graphKind struct{}
//	tok, _ := tokcell.NewCounter[graphKind]()
//	cell := tokcell.NewCell(10, tok) // Cell[int, *CounterToken[graphKind]]
//
// Within a kind, strategies differ in how instance identity is checked.
//
// # Token Strategies
//
// Four strategies construct tokens; all expose the same surface — a
// constructor, a scoped-invocation entry point, an identity accessor, and a
// comparison operation:
//
//   - [CounterToken]: runtime-counted. Construction always succeeds and
//     issues the next value of a process-wide monotonic counter. Presenting
//     the wrong instance yields a [MismatchError] carrying both identities.
//   - [LeaseToken]: singleton-lease. At most one live instance per kind;
//     construction fails with [ErrLeaseUnavailable] while another instance
//     is live, and [LeaseToken.Release] frees the slot.
//   - [ScopedToken]: scope-bound. Constructible only through [WithScoped],
//     which hands a fresh instance to a caller-supplied function; direct
//     construction fails with [ErrOutsideScope]. Each scope's token carries
//     a distinct counter identity, so cross-scope presentation is rejected
//     at runtime.
//   - [UncheckedToken]: escape hatch. Construction always succeeds and
//     comparison always succeeds; the caller is responsible for not mixing
//     instances (for example one token per exclusive-access domain).
//
// Constructors:
//
//   - [NewCounter], [NewLease], [NewScoped], [NewUnchecked]: per-strategy
//     construction, uniformly returning (token, error)
//   - [WithCounter], [WithLease], [WithScoped], [WithUnchecked]: scoped
//     invocation — construct, pass the token to a body function, return its
//     result
//   - [NewRuntimeToken]: convenience constructor for the predeclared
//     [RuntimeToken] counter kind
//
// # Guarded Cell
//
// [Cell] pairs a value with the identity snapshot of the token that may
// unlock it. The cell never owns a token, only a copy of its identity, so
// cell lifetime is independent of token lifetime.
//
//   - [NewCell]: pair a value with a token's identity
//   - [Cell.TryBorrow], [Cell.TryBorrowMut]: checked access, typed error on
//     mismatch
//   - [Cell.Borrow], [Cell.BorrowMut]: checked access, panic on mismatch
//   - [Cell.TryGuard], [Cell.TryGuardMut]: checked access returning a guard
//     that also recovers the token
//   - [Cell.GetMut]: capability-free access — exclusive access to the cell
//     itself is already proof of exclusive access to the value
//   - [Cell.IntoInner]: unwrap by value — full ownership subsumes any check
//
// # Guards
//
// [Guard] and [GuardMut] are transient proof-of-access handles produced by a
// successful comparison. They carry the cell and the token together so the
// token can be recovered ([Guard.Token]), and they never re-run the
// comparison. A guard holds no runtime state; dropping it releases nothing.
//
// # Deferred Maps
//
// [Map] and [MapMut] bind a closure to a cell without touching any token.
// The closure runs only when a token is later presented:
//
//   - [TokenMap.Apply] / [TokenMapMut.Apply]: run the closure, panicking on
//     mismatch or reuse
//   - [TokenMap.TryApply] / [TokenMapMut.TryApply]: non-panicking variant
//   - [TokenMap.Discard] / [TokenMapMut.Discard]: mark consumed without
//     running
//
// Affine semantics: each map may be applied at most once. A failed
// [TokenMap.TryApply] leaves the map unconsumed so the caller may retry with
// another token; a failed [TokenMapMut.TryApply] consumes the map.
//
// # Concurrency Contract
//
// A Cell may be shared across goroutines for read-only use even though it
// permits interior mutation, because every mutation is gated on a token the
// caller must hold exclusively. The package performs no synchronization of
// the value itself: the token discipline — at most one goroutine using a
// given token for mutation at a time — is what prevents concurrent
// mutation, exactly as an external lock would. Global strategy state (the
// counter, the lease slots) is maintained with atomic operations and is safe
// under arbitrary concurrent construction.
//
// # Example
//
//	type accountsKind struct{}
//
//	tok, _ := tokcell.NewCounter[accountsKind]()
//	balance := tokcell.NewCell(100, tok)
//
//	*balance.BorrowMut(tok) -= 30
//	fmt.Println(*balance.Borrow(tok)) // 70
//
//	other, _ := tokcell.NewCounter[accountsKind]()
//	_, err := balance.TryBorrow(other) // *MismatchError
package tokcell
