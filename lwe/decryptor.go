package lwe

import (
	"fmt"

	"github.com/tuneinsight/tfhe-core/ring"
)

// Decryptor decrypts TLWE ciphertexts under a SecretKey (spec §4.C).
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor builds a Decryptor for sk under params.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {
	return &Decryptor{params: params, sk: sk}
}

// Decrypt recovers the plaintext torus Element encoded in ct: compute
// v = b - <s,a>, then snap v onto the p-point grid via
// from_int(to_int(v,p),p) (spec §4.C, "Decryption"). Returns
// ring.ErrNotEncrypted if ct is empty, or ring.ErrParameterMismatch if ct
// was not produced under params (n, p).
func (dec *Decryptor) Decrypt(ct *Ciphertext) (ring.Element, error) {
	if err := ct.checkPopulated(); err != nil {
		return ring.Element{}, err
	}
	if !dec.params.Compatible(ct.params) {
		return ring.Element{}, fmt.Errorf("lwe: decrypt: %w", ring.ErrParameterMismatch)
	}

	v := ct.body
	bits := dec.sk.Bits()
	for i, ai := range ct.mask {
		if bits[i] == 1 {
			v = v.Sub(ai)
		}
	}

	k := v.ToInt(dec.params.p)
	snapped, _ := ring.FromInt(k, dec.params.p)
	return snapped, nil
}
