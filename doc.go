// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package newt provides zero-cost coercion between wrapper (newtype) types
// and their payloads, and combinators for lifting functions across that
// boundary.
//
// A wrapper type exists solely to attach meaning to a payload — Sum[int]
// tags an int with "combine by addition" — and shares the payload's memory
// layout exactly. The core type [Iso] witnesses that layout equality; every
// combinator in the package converts between the two sides by
// reinterpretation, never by wrapping, copying, or traversing.
//
// # Design Philosophy
//
// newt provides:
//   - A single checked coercion primitive that all combinators route through
//   - Whole-function and whole-container coercion instead of adapter
//     closures and element-wise rewrapping
//   - Construction-time validation: once a witness exists, no operation can
//     fail or allocate
//
// # Soundness
//
// Go has no compile-time representational-equality constraint, so the
// relation is enforced at witness construction: [For] verifies structurally,
// via reflection, that the two types occupy identical memory layout, and
// panics otherwise. Witnesses live in package variables in typical use, so a
// violated layout assumption fails at program start.
//
// The layout rules accept a pair when the types are identical, when one is
// a single-field struct over something layout-equal to the other (the
// newtype rule, applied recursively), or when both are built by the same
// type constructor — pointer, slice, array, map, channel, function, struct —
// from layout-equal components. Scalar kinds match on kind alone; distinct
// interface types are rejected. Same size alone is never sufficient.
//
// A witness cannot be forged: the zero value of [Iso] is invalid and every
// coercion path panics on it. The only ways to obtain a valid witness are
// [For], [Refl], and derivation from valid witnesses.
//
// # Witness Construction
//
//   - [For]: validate and construct Iso[W, P]
//   - [Refl]: the reflexive witness Iso[T, T]
//   - [Iso.Flip]: symmetry — Iso[W, P] to Iso[P, W]
//   - [Trans]: transitivity — compose two witnesses
//   - [SliceOf], [PtrOf], [MapOf], [ChanOf]: container witnesses derived
//     from element witnesses without re-validation
//
// # Coercion and Composition
//
//   - [Iso.Wrap], [Iso.Unwrap]: reinterpret a single value
//   - [ComposeLeft]: coerce a function's argument side
//   - [ComposeRight]: coerce a function's result side
//
// ComposeLeft and ComposeRight coerce the function value itself rather than
// wrapping it in a converting closure. The distinction matters: a wrapping
// closure allocates, adds a call frame, and changes strictness by delaying
// the underlying call behind another value, while a coerced function is the
// original function.
//
// # Combinators
//
//   - [Under]: present a function on wrappers as one on payloads
//   - [Over]: present a function on payloads as one on wrappers
//   - [Under2], [Over2]: binary forms, for combine operations
//   - [UnderFunctor], [OverFunctor]: container-level forms; the whole
//     container is coerced via a derived witness, elements are never visited
//   - [UnderSlice], [OverSlice]: slice specializations
//   - [Lift]: run a packing-polymorphic hof (a fold, say) in a wrapper's
//     semantics while exposing payload values at the boundary
//   - [LiftWith]: Lift with a pre-transform fused into the packing step
//
// # Stock Wrappers
//
// Common combining wrappers ship with the package, each a single-field
// struct accepted by [For]:
//
//   - [Sum], [Product]: numeric addition and multiplication
//   - [Any], [All]: boolean OR and AND
//   - [Min], [Max]: ordered minimum and maximum (no identity — [Semigroup])
//   - [First], [Last]: keep-first and keep-last (no identity — [Semigroup])
//
// [Monoid] and [Semigroup] are F-bounded constraints; [FoldMap], [Concat],
// and [Concat1] fold slices through them. FoldMap's shape matches Lift's
// hof parameter.
//
// # Zero-Cost Target
//
// Every combinator application must cost exactly what applying the
// underlying function costs: no allocation, no extra indirection. Witness
// construction reflects over the two types and may allocate; everything
// after it is a bit-for-bit reinterpretation. The allocation tests assert
// zero allocations per coercion and per combinator application, and the
// benchmarks pair each combinator against the bare payload function.
//
// # Example
//
//	var sum = newt.For[newt.Sum[int], int]()
//
//	total := newt.Lift(sum, sum, newt.FoldMap[int, newt.Sum[int]])
//	total([]int{1, 2, 3, 4}) // 10
//
//	lengths := newt.LiftWith(sum, sum, newt.FoldMap[string, newt.Sum[int]],
//		func(s string) int { return len(s) })
//	lengths([]string{"hello", "world"}) // 10
package newt
