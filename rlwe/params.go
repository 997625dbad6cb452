// Package rlwe implements TRLWE ciphertexts over the negacyclic torus
// polynomial ring T[X]/(X^N+1) (spec component D): secret-key generation,
// encryption with discrete-Gaussian noise, decryption, and the additive and
// scalar-multiplicative linear operators.
package rlwe

import (
	"fmt"
	"math/bits"

	"github.com/tuneinsight/tfhe-core/ring"
)

// Parameters bundles the TRLWE configuration: n (ring degree, the exponent
// in X^n+1), k (mask length, the number of secret-key/mask polynomials),
// sigma (Gaussian noise standard deviation) and p (plaintext modulus). q is
// fixed at 2^64 (ring.Q) and is not stored. p==0 is the sentinel for
// p==q==2^64, see ring.Element.
type Parameters struct {
	n     int
	k     int
	sigma float64
	p     uint64
}

// NewParameters validates and constructs Parameters. n must be a positive
// power of two (the ring degree), k must be positive, sigma must be
// positive, and p must be a power of two no greater than 2^64 (p==0 stands
// for p==2^64). Returns ErrInvalidParameter otherwise.
func NewParameters(n, k int, sigma float64, p uint64) (Parameters, error) {
	if n <= 0 || bits.OnesCount(uint(n)) != 1 {
		return Parameters{}, fmt.Errorf("rlwe: n=%d must be a positive power of two: %w", n, ring.ErrInvalidParameter)
	}
	if k <= 0 {
		return Parameters{}, fmt.Errorf("rlwe: k=%d must be positive: %w", k, ring.ErrInvalidParameter)
	}
	if sigma <= 0 {
		return Parameters{}, fmt.Errorf("rlwe: sigma=%v must be positive: %w", sigma, ring.ErrInvalidParameter)
	}
	if p != 0 && bits.OnesCount64(p) != 1 {
		return Parameters{}, fmt.Errorf("rlwe: p=%d must be a power of two: %w", p, ring.ErrInvalidParameter)
	}
	return Parameters{n: n, k: k, sigma: sigma, p: p}, nil
}

// N returns the ring degree (polynomials live in T[X]/(X^N+1)).
func (params Parameters) N() int { return params.n }

// K returns the mask length (number of secret-key/mask polynomials).
func (params Parameters) K() int { return params.k }

// Sigma returns the Gaussian noise standard deviation.
func (params Parameters) Sigma() float64 { return params.sigma }

// P returns the plaintext modulus, or 0 as the sentinel for p==2^64.
func (params Parameters) P() uint64 { return params.p }

// Compatible reports whether params and other share (n, k, p) — q is
// always equal since it is fixed — required for c1±c2.
func (params Parameters) Compatible(other Parameters) bool {
	return params.n == other.n && params.k == other.k && params.p == other.p
}
