package rlwe

import (
	"github.com/tuneinsight/tfhe-core/ring"
	"github.com/tuneinsight/tfhe-core/utils/sampling"
)

// SecretKey is a length-k sequence of degree-n polynomials with
// independent uniformly random {0,1} coefficients (spec §3,
// RLWESecretKey), sampled once at construction and read-only thereafter.
type SecretKey struct {
	polys [][]uint64
}

// NewSecretKey samples a fresh SecretKey of params.K() polynomials, each of
// params.N() bits, using prng.
func NewSecretKey(params Parameters, prng sampling.PRNG) *SecretKey {
	s := ring.NewUniformSampler(prng)
	polys := make([][]uint64, params.K())
	for i := range polys {
		polys[i] = s.ReadBits(params.N())
	}
	return &SecretKey{polys: polys}
}

// Polys returns the key's polynomials, as raw {0,1} coefficient sequences
// suitable for Polynomial.MulInt.
func (sk *SecretKey) Polys() [][]uint64 {
	return sk.polys
}
