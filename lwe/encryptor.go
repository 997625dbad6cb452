package lwe

import (
	"github.com/tuneinsight/tfhe-core/ring"
	"github.com/tuneinsight/tfhe-core/utils/sampling"
)

// Encryptor encrypts plaintext torus Elements under a SecretKey (spec §4.C).
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

// Encrypt encrypts the plaintext torus Element u: sample a uniformly random
// mask a in T^n, sample noise e ~ Gaussian(0,sigma), and set the body
// b = <s,a> + u + e (spec §4.C, "Encryption").
func (enc *Encryptor) Encrypt(u ring.Element) *Ciphertext {
	mask := enc.uniform.ReadN(enc.params.n)
	e := enc.noise.Read()

	body := u.Add(e)
	bits := enc.sk.Bits()
	for i, ai := range mask {
		if bits[i] == 1 {
			body = body.Add(ai)
		}
	}
	return newCiphertext(enc.params, mask, body)
}
