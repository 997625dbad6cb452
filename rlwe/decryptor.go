package rlwe

import (
	"fmt"

	"github.com/tuneinsight/tfhe-core/ring"
)

// Decryptor decrypts TRLWE ciphertexts under a SecretKey (spec §4.D).
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor builds a Decryptor for sk under params.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {
	return &Decryptor{params: params, sk: sk}
}

// Decrypt recovers the plaintext torus Polynomial encoded in ct: compute
// V = B - sum_i s_i*A_i, then snap every coefficient of V onto the p-point
// grid via from_int(to_int(v,p),p) (spec §4.D, "Decryption"). Returns
// ring.ErrNotEncrypted if ct is empty, or ring.ErrParameterMismatch if ct
// was not produced under params (n, k, p).
func (dec *Decryptor) Decrypt(ct *Ciphertext) (ring.Polynomial, error) {
	if err := ct.checkPopulated(); err != nil {
		return ring.Polynomial{}, err
	}
	if !dec.params.Compatible(ct.params) {
		return ring.Polynomial{}, fmt.Errorf("rlwe: decrypt: %w", ring.ErrParameterMismatch)
	}

	v := ct.body
	polys := dec.sk.Polys()
	for i, ai := range ct.mask {
		product, err := ai.MulInt(polys[i])
		if err != nil {
			return ring.Polynomial{}, err
		}
		v, err = v.Sub(product)
		if err != nil {
			return ring.Polynomial{}, err
		}
	}

	ks := v.ToInt(dec.params.p)
	snapped, _ := ring.FromSequenceInt(ks, dec.params.p)
	return snapped, nil
}
