package rlwe

import (
	"github.com/tuneinsight/tfhe-core/ring"
	"github.com/tuneinsight/tfhe-core/utils/sampling"
)

// Encryptor encrypts plaintext torus Polynomials under a SecretKey
// (spec §4.D).
type Encryptor struct {
	params  Parameters
	sk      *SecretKey
	uniform *ring.UniformSampler
	noise   *ring.GaussianSampler
}

// NewEncryptor builds an Encryptor for sk under params, drawing mask and
// noise randomness from prng.
func NewEncryptor(params Parameters, sk *SecretKey, prng sampling.PRNG) *Encryptor {
	return &Encryptor{
		params:  params,
		sk:      sk,
		uniform: ring.NewUniformSampler(prng),
		noise:   ring.NewGaussianSampler(prng, params.sigma),
	}
}

// Encrypt encrypts the plaintext torus Polynomial m (degree params.N()):
// sample k uniformly random mask polynomials A, sample a noise polynomial e
// whose coefficients are independent discrete Gaussians, and set the body
// B = sum_i s_i*A_i + m + e, where each product is the negacyclic
// convolution of spec §4.B (spec §4.D, "Encryption").
func (enc *Encryptor) Encrypt(m ring.Polynomial) (*Ciphertext, error) {
	mask := make([]ring.Polynomial, enc.params.k)
	for i := range mask {
		mask[i] = enc.uniform.ReadPolynomial(enc.params.n)
	}
	e := enc.noise.ReadPolynomial(enc.params.n)

	body, err := m.Add(e)
	if err != nil {
		return nil, err
	}
	polys := enc.sk.Polys()
	for i, ai := range mask {
		product, err := ai.MulInt(polys[i])
		if err != nil {
			return nil, err
		}
		body, err = body.Add(product)
		if err != nil {
			return nil, err
		}
	}
	return newCiphertext(enc.params, mask, body), nil
}
