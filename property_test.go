// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package newt_test

import (
	"math/rand"
	"testing"

	"code.hybscloud.com/newt"
)

const propertyN = 1000

// tagged is a string wrapper for the round-trip properties.
type tagged struct{ s string }

var taggedIso = newt.For[tagged, string]()

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.Intn(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.Intn(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Intn(95) + 32) // printable ASCII
	}
	return string(b)
}

// TestPropertyRoundTripInt: Unwrap(Wrap(x)) ≡ x and Wrap(Unwrap(w)) ≡ w
func TestPropertyRoundTripInt(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < propertyN; i++ {
		x := randInt(rng)
		if got := sumIso.Unwrap(sumIso.Wrap(x)); got != x {
			t.Fatalf("round trip: %d != %d", got, x)
		}
		w := newt.Sum[int]{Value: randInt(rng)}
		if got := sumIso.Wrap(sumIso.Unwrap(w)); got != w {
			t.Fatalf("round trip: %v != %v", got, w)
		}
	}
}

// TestPropertyRoundTripString: round trip through a string wrapper
func TestPropertyRoundTripString(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < propertyN; i++ {
		s := randString(rng)
		if got := taggedIso.Unwrap(taggedIso.Wrap(s)); got != s {
			t.Fatalf("round trip: %q != %q", got, s)
		}
	}
}

// TestPropertyUnderOverDuality: Under(Over(f)) ≡ f extensionally
func TestPropertyUnderOverDuality(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < propertyN; i++ {
		a := randInt(rng)
		b := randInt(rng)
		f := func(x float64) float64 { return float64(a)*x + float64(b) }
		g := newt.Under(metersIso, metersIso, newt.Over(metersIso, metersIso, f))
		x := float64(randInt(rng))
		if g(x) != f(x) {
			t.Fatalf("duality: %v != %v (a=%d b=%d x=%v)", g(x), f(x), a, b, x)
		}
	}
}

// TestPropertyComposeLeftEquivalence: ComposeLeft(i, f)(p) ≡ f(i.Wrap(p))
func TestPropertyComposeLeftEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	scale := func(m meters) float64 { return m.value * 10 }
	f := newt.ComposeLeft(metersIso, scale)
	for i := 0; i < propertyN; i++ {
		p := float64(randInt(rng))
		if f(p) != scale(metersIso.Wrap(p)) {
			t.Fatalf("compose-left mismatch at %v", p)
		}
	}
}

// TestPropertyComposeRightEquivalence: ComposeRight(i, f)(c) ≡ i.Wrap(f(c))
func TestPropertyComposeRightEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	half := func(x float64) float64 { return x / 2 }
	f := newt.ComposeRight(metersIso, half)
	for i := 0; i < propertyN; i++ {
		p := float64(randInt(rng))
		if f(p) != metersIso.Wrap(half(p)) {
			t.Fatalf("compose-right mismatch at %v", p)
		}
	}
}

// TestPropertyFunctorNaturality: UnderSlice(map f) ≡ map(Under(f)),
// preserving order and length
func TestPropertyFunctorNaturality(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	mapDouble := func(xs []meters) []meters { return mapSlice(doubleMeters, xs) }
	lifted := newt.UnderSlice(metersIso, metersIso, mapDouble)
	elementwise := newt.Under(metersIso, metersIso, doubleMeters)
	for i := 0; i < propertyN; i++ {
		n := rng.Intn(16)
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = float64(randInt(rng))
		}
		got := lifted(xs)
		want := mapSlice(elementwise, xs)
		if len(got) != len(want) {
			t.Fatalf("length changed: %d != %d", len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("element %d: %v != %v", i, got[i], want[i])
			}
		}
	}
}

// TestPropertyLiftIdentityHook: Lift ≡ LiftWith with the identity hook
func TestPropertyLiftIdentityHook(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	viaLift := newt.Lift(sumIso, sumIso, newt.FoldMap[int, newt.Sum[int]])
	viaHook := newt.LiftWith(sumIso, sumIso, newt.FoldMap[int, newt.Sum[int]],
		func(x int) int { return x })
	for i := 0; i < propertyN; i++ {
		n := rng.Intn(16)
		xs := make([]int, n)
		for i := range xs {
			xs[i] = randInt(rng)
		}
		if viaLift(xs) != viaHook(xs) {
			t.Fatalf("lift/hook mismatch on %v", xs)
		}
	}
}

// TestPropertyLiftWithFusion: LiftWith(hof, f) ≡ Lift(hof) after mapping f
func TestPropertyLiftWithFusion(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	length := func(s string) int { return len(s) }
	fused := newt.LiftWith(sumIso, sumIso, newt.FoldMap[string, newt.Sum[int]], length)
	unfused := newt.Lift(sumIso, sumIso, newt.FoldMap[int, newt.Sum[int]])
	for i := 0; i < propertyN; i++ {
		n := rng.Intn(8)
		ss := make([]string, n)
		for i := range ss {
			ss[i] = randString(rng)
		}
		if fused(ss) != unfused(mapSlice(length, ss)) {
			t.Fatalf("fusion mismatch on %q", ss)
		}
	}
}
