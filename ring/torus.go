// Package ring implements fixed-precision torus arithmetic (T = R/Z,
// q = 2^64) and the negacyclic torus-polynomial ring T[X]/(X^N+1) built on
// top of it: encoding and decoding of reals, integers and arbitrary-range
// floats, modular addition/subtraction, and scalar multiplication by a
// non-negative integer.
package ring

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Q is the ambient torus modulus, fixed at 2^64. Every Element's data field
// is interpreted as data/Q. Untyped so it can be used in float constant
// expressions (qFloat below) without truncating: a uint64 variable cannot
// itself hold the value 2^64.
const Q = 1 << 64

// qFloat is Q expressed as a float64 for use in float-domain encoders.
const qFloat float64 = Q

// Element is a single value of the torus T, stored as an unsigned 64-bit
// integer interpreted as data/2^64 in [0,1). Element is an immutable value
// type: every operation returns a new Element.
type Element struct {
	data uint64
}

// NewElementFromBits constructs an Element directly from its raw q-scaled
// representation. Used by samplers and by callers reconstructing a
// serialized ciphertext.
func NewElementFromBits(data uint64) Element {
	return Element{data: data}
}

// Bits returns the raw q-scaled representation of e.
func (e Element) Bits() uint64 {
	return e.data
}

// FromReal normalizes r modulo 1 and returns the Element closest to it at
// full q=2^64 precision. If r is not in [0,1), the result is still the
// normalized value and ok is false, signalling the OutOfRange diagnostic
// category of spec §7 (non-fatal: callers may ignore ok).
func FromReal(r float64) (e Element, ok bool) {
	ok = r >= 0 && r < 1
	frac := math.Mod(r, 1)
	if frac < 0 {
		frac += 1
	}
	return Element{data: uint64(roundHalfAwayFromZero(frac * qFloat))}, ok
}

// ToReal decodes e onto the p-point grid of the torus, returning a value in
// [0,1). p must be a power of two no greater than 2^64 (the caller is
// expected to have validated this via a Parameters constructor).
func (e Element) ToReal(p uint64) float64 {
	k := e.ToInt(p)
	return float64(k) / pFloat(p)
}

// FromInt encodes an integer i as the Element representing i/p on the
// torus, discretized with log2(p) bits of precision. Values outside [0,p)
// are reduced modulo p; ok reports whether i was already in range. i is
// assumed to fit in an int64 (true of any plaintext integer the module
// deals with); p may be as large as 2^64 (via the p==0 sentinel, see
// qOverP) without overflow, since the reduction below is done in uint64
// space rather than by casting p to int64.
func FromInt[T constraints.Integer](i T, p uint64) (e Element, ok bool) {
	vi := int64(i)
	reduced, inRange := reduceModP(vi, p)
	return Element{data: scaleByQOverP(reduced, p)}, inRange
}

// reduceModP reduces vi into [0,p) (or [0,2^64) when p==0, the p==q
// sentinel), returning whether vi was already in that range.
func reduceModP(vi int64, p uint64) (reduced uint64, inRange bool) {
	if p == 0 {
		// p == q == 2^64: casting to uint64 is already reduction mod 2^64,
		// including the correct wrap for negative vi via two's complement.
		return uint64(vi), vi >= 0
	}
	if vi >= 0 {
		v := uint64(vi)
		return v % p, v < p
	}
	m := uint64(-vi) % p
	if m == 0 {
		return 0, false
	}
	return p - m, false
}

// ToInt decodes e as an integer in [0,p), the inverse of FromInt.
func (e Element) ToInt(p uint64) uint64 {
	step := qOverP(p)
	if step == 0 {
		// p == 1: the single plaintext value is always 0.
		return 0
	}
	// data/step rounded half away from zero, in integer arithmetic so the
	// result stays exact for every p up to 2^64.
	k := e.data / step
	if rem := e.data % step; rem >= step-rem {
		k++
	}
	if p == 0 {
		return k // p == q == 2^64: no reduction possible or needed.
	}
	return k % p
}

// FromFloat encodes a real r drawn from the half-open range [lo,hi) as a
// torus Element at precision p, the composition delta=hi-lo,
// x=(r-lo) mod delta, k=round(x*p/delta) mod p, from_int(k,p). Returns
// ErrInvalidParameter if hi<=lo.
func FromFloat(r float64, p uint64, lo, hi float64) (Element, bool, error) {
	if hi <= lo {
		return Element{}, false, fmt.Errorf("ring: data range [%v,%v): %w", lo, hi, ErrInvalidParameter)
	}
	delta := hi - lo
	x := math.Mod(r-lo, delta)
	if x < 0 {
		x += delta
	}
	k := roundHalfAwayFromZero(x * pFloat(p) / delta)
	reduced, _ := reduceModP(int64(k), p)
	e, ok := FromInt(reduced, p)
	inRange := r >= lo && r < hi
	return e, ok && inRange, nil
}

// pFloat returns p as a float64, with the p==0 sentinel (see qOverP)
// expanded to its true value 2^64.
func pFloat(p uint64) float64 {
	if p == 0 {
		return qFloat
	}
	return float64(p)
}

// ToFloat decodes e at precision p back onto the real range [lo,hi), the
// inverse of FromFloat.
func (e Element) ToFloat(p uint64, lo, hi float64) float64 {
	k := e.ToInt(p)
	return float64(k)*(hi-lo)/pFloat(p) + lo
}

// Add returns e+other, wrapping modulo 2^64.
func (e Element) Add(other Element) Element {
	return Element{data: e.data + other.data}
}

// Sub returns e-other, wrapping modulo 2^64.
func (e Element) Sub(other Element) Element {
	return Element{data: e.data - other.data}
}

// Neg returns -e, wrapping modulo 2^64. Used to implement
// u - c = (-c) + u for ciphertexts (spec §9, Open Question 2).
func (e Element) Neg() Element {
	return Element{data: -e.data}
}

// MulScalar returns k*e, wrapping modulo 2^64, for a non-negative integer k.
// Torus-by-torus multiplication is not a group operation and is
// intentionally not provided; see ErrUnsupportedOperand at the ciphertext
// layer for the analogous restriction.
func (e Element) MulScalar(k uint64) Element {
	return Element{data: e.data * k}
}

// Equal reports whether e and other hold the same raw representation.
func (e Element) Equal(other Element) bool {
	return e.data == other.data
}

// qOverP returns q/p as an integer step size. p must be a power of two;
// p==0 is the sentinel for p==q==2^64 (which cannot itself be represented in
// a uint64), per spec §4.A and §9 Open Question 3: q/p==1 in that case.
// Callers are expected to have validated p via a Parameters constructor.
func qOverP(p uint64) uint64 {
	switch p {
	case 0:
		return 1 // p == q == 2^64
	case 1:
		return 0 // q/p == 2^64, not representable; every value snaps to 0
	default:
		l := bits.TrailingZeros64(p)
		return uint64(1) << (64 - l)
	}
}

func scaleByQOverP(value, p uint64) uint64 {
	return value * qOverP(p) // qOverP(1)==0 collapses any value to Element{0}, matching ToInt(1)==0 always.
}

func roundHalfAwayFromZero(x float64) uint64 {
	if x < 0 {
		return uint64(math.Ceil(x - 0.5))
	}
	return uint64(math.Floor(x + 0.5))
}
