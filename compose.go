// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package newt

// Function-level coercion.
//
// A function type shares layout with any function type whose parameters and
// results pairwise share layout, so a witness on the argument or result side
// licenses coercing the function value itself. This is what keeps the
// combinators allocation-free: the naive alternative, wrapping f in a
// closure that converts at the boundary, allocates an adapter and adds a
// call frame on every application. ComposeLeft and ComposeRight exist so
// every higher combinator can route through whole-function coercion instead.

// ComposeLeft coerces the argument side of a function: given f operating on
// wrapper values, it returns the same function machine-code-wise, typed to
// accept payload values.
//
// Allocation note: no closure is created; the returned value is f
// reinterpreted.
func ComposeLeft[W, P, C any](i Iso[W, P], f func(W) C) func(P) C {
	i.check()
	return coerce[func(P) C](f)
}

// ComposeRight coerces the result side of a function: given f producing
// payload values, it returns the same function typed to produce wrapper
// values.
//
// Allocation note: no closure is created; the returned value is f
// reinterpreted.
func ComposeRight[W, P, C any](i Iso[W, P], f func(C) P) func(C) W {
	i.check()
	return coerce[func(C) W](f)
}
