package rlwe

import "github.com/tuneinsight/tfhe-core/ring"

// Evaluator holds Parameters and dispatches TRLWE's linear homomorphic
// operations (spec §4.D) to the corresponding Ciphertext methods, the
// ring-valued analog of lwe.Evaluator. Operand compatibility is checked by
// those methods between the operands themselves; the operands are not
// compared against the Evaluator's own Parameters.
type Evaluator struct {
	params Parameters
}

// NewEvaluator builds an Evaluator for params.
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{params: params}
}

// Add returns a+b (spec §4.D).
func (eval *Evaluator) Add(a, b *Ciphertext) (*Ciphertext, error) {
	return a.Add(b)
}

// Sub returns a-b (spec §4.D).
func (eval *Evaluator) Sub(a, b *Ciphertext) (*Ciphertext, error) {
	return a.Sub(b)
}

// Neg returns -a.
func (eval *Evaluator) Neg(a *Ciphertext) (*Ciphertext, error) {
	return a.Neg()
}

// AddPlaintext returns a+m for a plaintext torus Polynomial m.
func (eval *Evaluator) AddPlaintext(a *Ciphertext, m ring.Polynomial) (*Ciphertext, error) {
	return a.AddPlaintext(m)
}

// SubPlaintext returns a-m for a plaintext torus Polynomial m.
func (eval *Evaluator) SubPlaintext(a *Ciphertext, m ring.Polynomial) (*Ciphertext, error) {
	return a.SubPlaintext(m)
}

// PlaintextSub returns m-a, the asymmetric direction: m-a = (-a)+m.
func (eval *Evaluator) PlaintextSub(m ring.Polynomial, a *Ciphertext) (*Ciphertext, error) {
	return PlaintextSub(m, a)
}

// MulScalar returns k*a for a non-negative integer k.
func (eval *Evaluator) MulScalar(a *Ciphertext, k uint64) (*Ciphertext, error) {
	return a.MulScalar(k)
}

// Mul always fails with ring.ErrUnsupportedOperand: see Ciphertext.Mul.
func (eval *Evaluator) Mul(a, b *Ciphertext) (*Ciphertext, error) {
	return a.Mul(b)
}
