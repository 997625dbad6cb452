package lwe

import (
	"fmt"

	"github.com/tuneinsight/tfhe-core/ring"
)

// Ciphertext is the TLWE ciphertext tuple (mask a in T^n, body b in T) plus
// its Parameters (spec §3). It has two lifecycle states: empty (just
// constructed, zero value) and populated (after Encrypt or a linear op
// derived from a populated ciphertext). Decryption or arithmetic on an
// empty ciphertext fails with ring.ErrNotEncrypted (spec §4.C "State
// machine").
//
// The canonical little-endian serialization a collaborator would use, per
// spec §6, is (n, p, sigma, a[0..n), b) as n+1 little-endian 64-bit
// unsigned integers plus the three scalar parameters.
type Ciphertext struct {
	params    Parameters
	mask      []ring.Element
	body      ring.Element
	populated bool
}

// Params returns the ciphertext's Parameters.
func (ct *Ciphertext) Params() Parameters { return ct.params }

// Mask returns the ciphertext's mask vector a.
func (ct *Ciphertext) Mask() []ring.Element { return ct.mask }

// Body returns the ciphertext's body b.
func (ct *Ciphertext) Body() ring.Element { return ct.body }

// Populated reports whether ct holds an encrypted value.
func (ct *Ciphertext) Populated() bool { return ct.populated }

func newCiphertext(params Parameters, mask []ring.Element, body ring.Element) *Ciphertext {
	return &Ciphertext{params: params, mask: mask, body: body, populated: true}
}

func (ct *Ciphertext) checkPopulated() error {
	if !ct.populated {
		return fmt.Errorf("lwe: ciphertext: %w", ring.ErrNotEncrypted)
	}
	return nil
}

// Add returns ct+other, coordinatewise mod q (spec §4.C). Fails with
// ring.ErrParameterMismatch if (n, p) disagree, or ring.ErrNotEncrypted if
// either side is empty.
func (ct *Ciphertext) Add(other *Ciphertext) (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	if err := other.checkPopulated(); err != nil {
		return nil, err
	}
	if !ct.params.Compatible(other.params) {
		return nil, fmt.Errorf("lwe: add: %w", ring.ErrParameterMismatch)
	}
	mask := make([]ring.Element, len(ct.mask))
	for i := range mask {
		mask[i] = ct.mask[i].Add(other.mask[i])
	}
	return newCiphertext(ct.params, mask, ct.body.Add(other.body)), nil
}

// Sub returns ct-other, coordinatewise mod q (spec §4.C).
func (ct *Ciphertext) Sub(other *Ciphertext) (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	if err := other.checkPopulated(); err != nil {
		return nil, err
	}
	if !ct.params.Compatible(other.params) {
		return nil, fmt.Errorf("lwe: sub: %w", ring.ErrParameterMismatch)
	}
	mask := make([]ring.Element, len(ct.mask))
	for i := range mask {
		mask[i] = ct.mask[i].Sub(other.mask[i])
	}
	return newCiphertext(ct.params, mask, ct.body.Sub(other.body)), nil
}

// Neg negates both mask and body: (-a, -b). Combined with AddPlaintext this
// implements u - ct = (-ct) + u (spec §9, Open Question 2).
func (ct *Ciphertext) Neg() (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	mask := make([]ring.Element, len(ct.mask))
	for i := range mask {
		mask[i] = ct.mask[i].Neg()
	}
	return newCiphertext(ct.params, mask, ct.body.Neg()), nil
}

// AddPlaintext returns ct+u for a plaintext torus Element u: (a, b+u), the
// "trivial addition" of spec §4.C. Addition is commutative, so this
// function serves both the ciphertext-plus-plaintext and
// plaintext-plus-ciphertext directions spec §6 requires be exposed.
func (ct *Ciphertext) AddPlaintext(u ring.Element) (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	mask := append([]ring.Element(nil), ct.mask...)
	return newCiphertext(ct.params, mask, ct.body.Add(u)), nil
}

// SubPlaintext returns ct-u for a plaintext torus Element u: (a, b-u).
func (ct *Ciphertext) SubPlaintext(u ring.Element) (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	mask := append([]ring.Element(nil), ct.mask...)
	return newCiphertext(ct.params, mask, ct.body.Sub(u)), nil
}

// PlaintextSub computes u-ct, the asymmetric direction spec §9's Open
// Question 2 leaves undefined in the original source: u - ct = (-ct) + u.
func PlaintextSub(u ring.Element, ct *Ciphertext) (*Ciphertext, error) {
	negated, err := ct.Neg()
	if err != nil {
		return nil, err
	}
	return negated.AddPlaintext(u)
}

// Mul always fails: ciphertext-by-ciphertext multiplication has no linear
// definition on TLWE (it requires an external product or bootstrapping,
// both out of scope here). Exposed so the UnsupportedOperand category of
// spec §7 has a concrete call site rather than being simply inexpressible.
func (ct *Ciphertext) Mul(other *Ciphertext) (*Ciphertext, error) {
	return nil, fmt.Errorf("lwe: ciphertext*ciphertext: %w", ring.ErrUnsupportedOperand)
}

// MulScalar returns k*ct for a non-negative integer k: (k*a, k*b). Noise
// grows linearly with k; callers are responsible for keeping k*sigma below
// the decryption tolerance of approximately 1/(2p) (spec §4.C).
func (ct *Ciphertext) MulScalar(k uint64) (*Ciphertext, error) {
	if err := ct.checkPopulated(); err != nil {
		return nil, err
	}
	mask := make([]ring.Element, len(ct.mask))
	for i := range mask {
		mask[i] = ct.mask[i].MulScalar(k)
	}
	return newCiphertext(ct.params, mask, ct.body.MulScalar(k)), nil
}
