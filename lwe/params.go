// Package lwe implements TLWE ciphertexts over the torus (spec component
// C): secret-key generation, encryption with discrete-Gaussian noise,
// decryption, and the additive and scalar-multiplicative linear operators.
package lwe

import (
	"fmt"
	"math/bits"

	"github.com/tuneinsight/tfhe-core/ring"
)

// Parameters bundles the TLWE configuration: n (mask/secret-key length),
// sigma (Gaussian noise standard deviation, a real in (0,1) of torus
// units) and p (plaintext modulus). q is fixed at 2^64 (ring.Q) and is not
// stored. p==0 is the sentinel for p==q==2^64, see ring.Element.
type Parameters struct {
	n     int
	sigma float64
	p     uint64
}

// NewParameters validates and constructs Parameters. n and sigma must be
// positive, and p must be a power of two no greater than 2^64 (spec §3/§6);
// p==0 stands for p==2^64, since 2^64 cannot itself be represented in a
// uint64. Returns ErrInvalidParameter otherwise.
func NewParameters(n int, sigma float64, p uint64) (Parameters, error) {
	if n <= 0 {
		return Parameters{}, fmt.Errorf("lwe: n=%d must be positive: %w", n, ring.ErrInvalidParameter)
	}
	if sigma <= 0 {
		return Parameters{}, fmt.Errorf("lwe: sigma=%v must be positive: %w", sigma, ring.ErrInvalidParameter)
	}
	if p != 0 && bits.OnesCount64(p) != 1 {
		return Parameters{}, fmt.Errorf("lwe: p=%d must be a power of two: %w", p, ring.ErrInvalidParameter)
	}
	return Parameters{n: n, sigma: sigma, p: p}, nil
}

// N returns the LWE dimension (mask/secret-key length).
func (params Parameters) N() int { return params.n }

// Sigma returns the Gaussian noise standard deviation.
func (params Parameters) Sigma() float64 { return params.sigma }

// P returns the plaintext modulus, or 0 as the sentinel for p==2^64.
func (params Parameters) P() uint64 { return params.p }

// Compatible reports whether params and other share (n, p, q) — q is
// always equal since it is fixed — per spec §4.C: required for c1±c2.
func (params Parameters) Compatible(other Parameters) bool {
	return params.n == other.n && params.p == other.p
}
