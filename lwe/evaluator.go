package lwe

import "github.com/tuneinsight/tfhe-core/ring"

// Evaluator holds Parameters and dispatches TLWE's linear homomorphic
// operations (spec §4.C) to the corresponding Ciphertext methods. Operand
// compatibility is checked by those methods between the operands
// themselves; the operands are not compared against the Evaluator's own
// Parameters. Mirrors the teacher's Evaluator-holds-Parameters shape
// (tuneinsight-lattigo rlwe.Evaluator), generalized here to a core with no
// evaluation keys.
type Evaluator struct {
	params Parameters
}

// NewEvaluator builds an Evaluator for params.
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{params: params}
}

// Add returns a+b (spec §4.C).
func (eval *Evaluator) Add(a, b *Ciphertext) (*Ciphertext, error) {
	return a.Add(b)
}

// Sub returns a-b (spec §4.C).
func (eval *Evaluator) Sub(a, b *Ciphertext) (*Ciphertext, error) {
	return a.Sub(b)
}

// Neg returns -a.
func (eval *Evaluator) Neg(a *Ciphertext) (*Ciphertext, error) {
	return a.Neg()
}

// AddPlaintext returns a+u for a plaintext torus Element u.
func (eval *Evaluator) AddPlaintext(a *Ciphertext, u ring.Element) (*Ciphertext, error) {
	return a.AddPlaintext(u)
}

// SubPlaintext returns a-u for a plaintext torus Element u.
func (eval *Evaluator) SubPlaintext(a *Ciphertext, u ring.Element) (*Ciphertext, error) {
	return a.SubPlaintext(u)
}

// PlaintextSub returns u-a, the asymmetric direction (spec §9, Open
// Question 2): u-a = (-a)+u.
func (eval *Evaluator) PlaintextSub(u ring.Element, a *Ciphertext) (*Ciphertext, error) {
	return PlaintextSub(u, a)
}

// MulScalar returns k*a for a non-negative integer k.
func (eval *Evaluator) MulScalar(a *Ciphertext, k uint64) (*Ciphertext, error) {
	return a.MulScalar(k)
}

// Mul always fails with ring.ErrUnsupportedOperand: see Ciphertext.Mul.
func (eval *Evaluator) Mul(a, b *Ciphertext) (*Ciphertext, error) {
	return a.Mul(b)
}
