// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package newt

// Under/Over combinator family.
//
// Under presents a function defined on wrapper values as one on payload
// values; Over is the dual. Both are whole-function coercions: the returned
// function is the argument reinterpreted, so applying it costs exactly what
// applying the original costs. Under and Over relate two wrapper/payload
// pairs and therefore take two witnesses — the input side and the output
// side. When both sides are the same pair, pass the same witness twice.

// Under presents f, defined on wrapper values, as a function on payload
// values. Extensionally, Under(in, out, f)(p) == out.Unwrap(f(in.Wrap(p))),
// but no wrapping happens at run time.
//
// Allocation note: no closure is created; the returned value is f
// reinterpreted.
func Under[W, P, W2, P2 any](in Iso[W, P], out Iso[W2, P2], f func(W) W2) func(P) P2 {
	in.check()
	out.check()
	return coerce[func(P) P2](f)
}

// Over presents f, defined on payload values, as a function on wrapper
// values. The dual of [Under]: Over(in, out, Under(in, out, f)) is f, both
// as machine code and extensionally.
func Over[W, P, W2, P2 any](in Iso[W, P], out Iso[W2, P2], f func(P) P2) func(W) W2 {
	in.check()
	out.check()
	return coerce[func(W) W2](f)
}

// Under2 is the binary form of [Under], for two-argument operations such as
// a monoid combine: a combine defined on wrapper values becomes one on
// payload values.
func Under2[W, P, W2, P2 any](in Iso[W, P], out Iso[W2, P2], f func(W, W) W2) func(P, P) P2 {
	in.check()
	out.check()
	return coerce[func(P, P) P2](f)
}

// Over2 is the binary form of [Over].
func Over2[W, P, W2, P2 any](in Iso[W, P], out Iso[W2, P2], f func(P, P) P2) func(W, W) W2 {
	in.check()
	out.check()
	return coerce[func(W, W) W2](f)
}

// UnderFunctor lifts [Under] through arbitrary one-argument containers. The
// witnesses are container-level — built with [SliceOf], [MapOf], [PtrOf],
// [ChanOf], or [For] — because representational equality composes through
// type constructors: if W ≈ P then F[W] ≈ F[P]. The whole container is
// coerced; elements are never visited or rewrapped.
func UnderFunctor[FW, FP, GW, GP any](in Iso[FW, FP], out Iso[GW, GP], f func(FW) GW) func(FP) GP {
	return Under(in, out, f)
}

// OverFunctor lifts [Over] through arbitrary one-argument containers.
func OverFunctor[FW, FP, GW, GP any](in Iso[FW, FP], out Iso[GW, GP], f func(FP) GP) func(FW) GW {
	return Over(in, out, f)
}

// UnderSlice is [UnderFunctor] specialized to slices, deriving the slice
// witnesses from the element witnesses.
func UnderSlice[W, P, W2, P2 any](in Iso[W, P], out Iso[W2, P2], f func([]W) []W2) func([]P) []P2 {
	return UnderFunctor(SliceOf(in), SliceOf(out), f)
}

// OverSlice is the slice specialization of [OverFunctor].
func OverSlice[W, P, W2, P2 any](in Iso[W, P], out Iso[W2, P2], f func([]P) []P2) func([]W) []W2 {
	return OverFunctor(SliceOf(in), SliceOf(out), f)
}
