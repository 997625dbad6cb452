package lwe

import (
	"github.com/tuneinsight/tfhe-core/ring"
	"github.com/tuneinsight/tfhe-core/utils/sampling"
)

// SecretKey is an ordered sequence of n independent uniformly random bits
// (spec §3, LWESecretKey), sampled once at construction and read-only
// thereafter.
type SecretKey struct {
	bits []uint64
}

// NewSecretKey samples a fresh SecretKey of length params.N() using prng.
func NewSecretKey(params Parameters, prng sampling.PRNG) *SecretKey {
	s := ring.NewUniformSampler(prng)
	return &SecretKey{bits: s.ReadBits(params.N())}
}

// Bits returns the key's bit sequence.
func (sk *SecretKey) Bits() []uint64 {
	return sk.bits
}
