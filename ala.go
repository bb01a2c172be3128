// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package newt

// Lift and LiftWith: the general boundary-wrapping workhorses.
//
// A higher-order function such as a fold is often polymorphic in how it
// packs elements into a combining type. Lift hands it the packing coercion
// for a chosen wrapper and strips the wrapper off the result, so the caller
// supplies and receives plain payload values while the hof computes in the
// wrapper's semantics (sum, product, any, ...).

// Lift runs hof against the packing function of the in witness and unwraps
// the result through the out witness. The hof receives in.Wrap as its
// packing function — coerced, not closure-wrapped — and the returned
// function accepts the hof's traversal argument and yields an unwrapped
// result.
//
// Example: with sum := For[Sum[int], int](),
//
//	Lift(sum, sum, FoldMap[int, Sum[int]])([]int{1, 2, 3, 4}) == 10
//
// Lift is LiftWith with the identity pre-transform.
func Lift[W, P, W2, P2, B any](in Iso[W, P], out Iso[W2, P2], hof func(func(P) W, B) W2) func(B) P2 {
	return LiftWith(in, out, hof, identity[P])
}

// LiftWith generalizes [Lift] with a pre-transform f fused into the packing
// step: the hof receives the single coerced function "pack of f" and never
// sees an intermediate payload pass. Use it when elements must be projected
// before packing, e.g. summing string lengths:
//
//	LiftWith(sum, sum, FoldMap[string, Sum[int]], func(s string) int { return len(s) })
//
// Allocation note: construction allocates exactly one closure, the partial
// application of hof; the packing function and the returned function are
// coercions of existing function values.
func LiftWith[W, P, W2, P2, D, B any](in Iso[W, P], out Iso[W2, P2], hof func(func(D) W, B) W2, f func(D) P) func(B) P2 {
	pack := ComposeRight(in, f)
	lifted := func(b B) W2 { return hof(pack, b) }
	return ComposeRight(out.Flip(), lifted)
}

// identity is the no-op pre-transform used by Lift. A generic function
// instantiation is a static function value, so passing it allocates nothing.
func identity[T any](v T) T { return v }
