package ring

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Polynomial is an element of the negacyclic torus ring T[X]/(X^N+1):
// an ordered sequence of N Elements, coefficient i multiplying X^i. N is
// fixed at construction and is expected to be a power of two (spec §3).
type Polynomial struct {
	coeffs []Element
}

// N returns the degree bound of p (the number of coefficients).
func (p Polynomial) N() int {
	return len(p.coeffs)
}

// Coeffs returns the underlying coefficient slice. Callers must not retain
// it across mutation of p's source encoder if aliasing matters; Polynomial
// values are otherwise treated as immutable by this package.
func (p Polynomial) Coeffs() []Element {
	return p.coeffs
}

// At returns the coefficient of X^i.
func (p Polynomial) At(i int) Element {
	return p.coeffs[i]
}

// NewPolynomialFromBits builds a Polynomial directly from raw q-scaled
// coefficients, for samplers and deserialization.
func NewPolynomialFromBits(data []uint64) Polynomial {
	coeffs := make([]Element, len(data))
	for i, d := range data {
		coeffs[i] = Element{data: d}
	}
	return Polynomial{coeffs: coeffs}
}

// FromScalarReal replicates a single real value across all N coefficients,
// the "auto-replicate" half of spec §4.B's duck-typed encoder, split per the
// REDESIGN FLAGS guidance into an explicitly named constructor.
func FromScalarReal(r float64, n int) (Polynomial, bool) {
	e, ok := FromReal(r)
	return replicate(e, n), ok
}

// FromSequenceReal encodes a length-N sequence of reals coefficient-wise.
func FromSequenceReal(rs []float64) (Polynomial, bool) {
	coeffs := make([]Element, len(rs))
	ok := true
	for i, r := range rs {
		e, o := FromReal(r)
		coeffs[i] = e
		ok = ok && o
	}
	return Polynomial{coeffs: coeffs}, ok
}

// FromScalarInt replicates a single integer value across all N coefficients.
func FromScalarInt[T constraints.Integer](i T, p uint64, n int) (Polynomial, bool) {
	e, ok := FromInt(i, p)
	return replicate(e, n), ok
}

// FromSequenceInt encodes a length-N sequence of integers coefficient-wise.
func FromSequenceInt[T constraints.Integer](is []T, p uint64) (Polynomial, bool) {
	coeffs := make([]Element, len(is))
	ok := true
	for idx, i := range is {
		e, o := FromInt(i, p)
		coeffs[idx] = e
		ok = ok && o
	}
	return Polynomial{coeffs: coeffs}, ok
}

// FromScalarFloat replicates a single ranged real value across all N
// coefficients.
func FromScalarFloat(r float64, p uint64, lo, hi float64, n int) (Polynomial, bool, error) {
	e, ok, err := FromFloat(r, p, lo, hi)
	if err != nil {
		return Polynomial{}, false, err
	}
	return replicate(e, n), ok, nil
}

// FromSequenceFloat encodes a length-N sequence of ranged reals
// coefficient-wise.
func FromSequenceFloat(rs []float64, p uint64, lo, hi float64) (Polynomial, bool, error) {
	coeffs := make([]Element, len(rs))
	ok := true
	for i, r := range rs {
		e, o, err := FromFloat(r, p, lo, hi)
		if err != nil {
			return Polynomial{}, false, err
		}
		coeffs[i] = e
		ok = ok && o
	}
	return Polynomial{coeffs: coeffs}, ok, nil
}

func replicate(e Element, n int) Polynomial {
	coeffs := make([]Element, n)
	for i := range coeffs {
		coeffs[i] = e
	}
	return Polynomial{coeffs: coeffs}
}

// ToReal decodes every coefficient at precision p, returning a length-N
// sequence of reals in [0,1).
func (p Polynomial) ToReal(precision uint64) []float64 {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.ToReal(precision)
	}
	return out
}

// ToInt decodes every coefficient at precision p, returning a length-N
// sequence of integers in [0,p).
func (p Polynomial) ToInt(precision uint64) []uint64 {
	out := make([]uint64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.ToInt(precision)
	}
	return out
}

// ToFloat decodes every coefficient at precision p back onto [lo,hi).
func (p Polynomial) ToFloat(precision uint64, lo, hi float64) []float64 {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.ToFloat(precision, lo, hi)
	}
	return out
}

// Add returns the coefficient-wise sum of p and other, each coefficient
// wrapping modulo 2^64. Returns ErrParameterMismatch if the degrees differ.
func (p Polynomial) Add(other Polynomial) (Polynomial, error) {
	if p.N() != other.N() {
		return Polynomial{}, fmt.Errorf("ring: poly add N=%d vs N=%d: %w", p.N(), other.N(), ErrParameterMismatch)
	}
	out := make([]Element, p.N())
	for i := range out {
		out[i] = p.coeffs[i].Add(other.coeffs[i])
	}
	return Polynomial{coeffs: out}, nil
}

// Sub returns the coefficient-wise difference of p and other.
func (p Polynomial) Sub(other Polynomial) (Polynomial, error) {
	if p.N() != other.N() {
		return Polynomial{}, fmt.Errorf("ring: poly sub N=%d vs N=%d: %w", p.N(), other.N(), ErrParameterMismatch)
	}
	out := make([]Element, p.N())
	for i := range out {
		out[i] = p.coeffs[i].Sub(other.coeffs[i])
	}
	return Polynomial{coeffs: out}, nil
}

// Neg negates every coefficient.
func (p Polynomial) Neg() Polynomial {
	out := make([]Element, p.N())
	for i, c := range p.coeffs {
		out[i] = c.Neg()
	}
	return Polynomial{coeffs: out}
}

// MulScalar multiplies every coefficient by the non-negative integer k.
func (p Polynomial) MulScalar(k uint64) Polynomial {
	out := make([]Element, p.N())
	for i, c := range p.coeffs {
		out[i] = c.MulScalar(k)
	}
	return Polynomial{coeffs: out}
}

// MulInt computes the negacyclic convolution of p, a torus polynomial,
// against b, an integer-coefficient polynomial of the same degree (in
// practice a TRLWE secret-key polynomial with {0,1} coefficients, per
// spec §3, though the formula below holds for any non-negative integer
// coefficients). This is the negacyclic multiplication spec §4.B mandates
// implementers provide, reducing by X^N=-1 per the formula in spec §9:
//
//	c_k = sum_{i+j=k} a_i*b_j - sum_{i+j=k+N} a_i*b_j   (mod 2^64)
//
// schoolbook O(N^2); FFT acceleration is explicitly optional per spec §4.B
// and not implemented here.
func (p Polynomial) MulInt(b []uint64) (Polynomial, error) {
	n := p.N()
	if len(b) != n {
		return Polynomial{}, fmt.Errorf("ring: poly mul N=%d vs %d: %w", n, len(b), ErrParameterMismatch)
	}
	out := make([]Element, n)
	for k := 0; k < n; k++ {
		var acc Element
		for i := 0; i < n; i++ {
			bi := b[i]
			if bi == 0 {
				continue
			}
			j := k - i
			if j >= 0 {
				acc = acc.Add(p.coeffs[j].MulScalar(bi))
			} else {
				// wraps past the top: X^N = -1, so X^(N+j) = -X^j.
				acc = acc.Sub(p.coeffs[j+n].MulScalar(bi))
			}
		}
		out[k] = acc
	}
	return Polynomial{coeffs: out}, nil
}
