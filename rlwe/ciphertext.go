package rlwe

import (
	"fmt"

	"github.com/tuneinsight/tfhe-core/ring"
)

// Ciphertext is the TRLWE ciphertext tuple (mask A, a length-k sequence of
// degree-n torus Polynomials; body B, a single degree-n torus Polynomial)
// plus its Parameters (spec §3). Like lwe.Ciphertext it carries an
// empty/populated state machine: arithmetic or decryption on an empty
// Ciphertext fails with ring.ErrNotEncrypted.
type Ciphertext struct {
	params    Parameters
	mask      []ring.Polynomial
	body      ring.Polynomial
	populated bool
}

// Params returns the ciphertext's Parameters.
func (ct *Ciphertext) Params() Parameters { return ct.params }

// Mask returns the ciphertext's mask polynomials A.
func (ct *Ciphertext) Mask() []ring.Polynomial { return ct.mask }

// Body returns the ciphertext's body polynomial B.
func (ct *Ciphertext) Body() ring.Polynomial { return ct.body }

// Populated reports whether ct holds an encrypted value.
func (ct *Ciphertext) Populated() bool { return ct.populated }

func newCiphertext(params Parameters, mask []ring.Polynomial, body ring.Polynomial) *Ciphertext {
	return &Ciphertext{params: params, mask: mask, body: body, populated: true}
}

func (ct *Ciphertext) checkPopulated() error {
	if !ct.populated {
		return fmt.Errorf("rlwe: ciphertext: %w", ring.ErrNotEncrypted)
	}
	return nil
}

// Add returns ct+other, polynomial-wise (spec §4.D). Fails with
// ring.ErrParameterMismatch if (n, k, p) disagree, or ring.ErrNotEncrypted
// if either side is empty.
func (ct *Ciphertext) Add(other *Ciphertext) (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	if err := other.checkPopulated(); err != nil {
		return nil, err
	}
	if !ct.params.Compatible(other.params) {
		return nil, fmt.Errorf("rlwe: add: %w", ring.ErrParameterMismatch)
	}
	mask := make([]ring.Polynomial, len(ct.mask))
	for i := range mask {
		sum, err := ct.mask[i].Add(other.mask[i])
		if err != nil {
			return nil, err
		}
		mask[i] = sum
	}
	body, err := ct.body.Add(other.body)
	if err != nil {
		return nil, err
	}
	return newCiphertext(ct.params, mask, body), nil
}

// Sub returns ct-other, polynomial-wise (spec §4.D).
func (ct *Ciphertext) Sub(other *Ciphertext) (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	if err := other.checkPopulated(); err != nil {
		return nil, err
	}
	if !ct.params.Compatible(other.params) {
		return nil, fmt.Errorf("rlwe: sub: %w", ring.ErrParameterMismatch)
	}
	mask := make([]ring.Polynomial, len(ct.mask))
	for i := range mask {
		diff, err := ct.mask[i].Sub(other.mask[i])
		if err != nil {
			return nil, err
		}
		mask[i] = diff
	}
	body, err := ct.body.Sub(other.body)
	if err != nil {
		return nil, err
	}
	return newCiphertext(ct.params, mask, body), nil
}

// Neg negates both mask and body. Combined with AddPlaintext this
// implements u - ct = (-ct) + u, mirroring the lwe package.
func (ct *Ciphertext) Neg() (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	mask := make([]ring.Polynomial, len(ct.mask))
	for i, a := range ct.mask {
		mask[i] = a.Neg()
	}
	return newCiphertext(ct.params, mask, ct.body.Neg()), nil
}

// AddPlaintext returns ct+m for a plaintext torus Polynomial m of degree n:
// (A, B+m), the "trivial addition" of spec §4.D. Addition is commutative,
// so this serves both the ciphertext-plus-plaintext and
// plaintext-plus-ciphertext directions.
func (ct *Ciphertext) AddPlaintext(m ring.Polynomial) (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	body, err := ct.body.Add(m)
	if err != nil {
		return nil, err
	}
	mask := append([]ring.Polynomial(nil), ct.mask...)
	return newCiphertext(ct.params, mask, body), nil
}

// SubPlaintext returns ct-m for a plaintext torus Polynomial m: (A, B-m).
func (ct *Ciphertext) SubPlaintext(m ring.Polynomial) (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	body, err := ct.body.Sub(m)
	if err != nil {
		return nil, err
	}
	mask := append([]ring.Polynomial(nil), ct.mask...)
	return newCiphertext(ct.params, mask, body), nil
}

// PlaintextSub computes m-ct, the asymmetric direction: m - ct = (-ct) + m.
func PlaintextSub(m ring.Polynomial, ct *Ciphertext) (*Ciphertext, error) {
	negated, err := ct.Neg()
	if err != nil {
		return nil, err
	}
	return negated.AddPlaintext(m)
}

// Mul always fails: ciphertext-by-ciphertext multiplication has no linear
// definition on TRLWE (it requires an external product or bootstrapping,
// both out of scope here).
func (ct *Ciphertext) Mul(other *Ciphertext) (*Ciphertext, error) {
	return nil, fmt.Errorf("rlwe: ciphertext*ciphertext: %w", ring.ErrUnsupportedOperand)
}

// MulScalar returns k*ct for a non-negative integer k: (k*A, k*B).
func (ct *Ciphertext) MulScalar(k uint64) (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	mask := make([]ring.Polynomial, len(ct.mask))
	for i, a := range ct.mask {
		mask[i] = a.MulScalar(k)
	}
	return newCiphertext(ct.params, mask, ct.body.MulScalar(k)), nil
}
