package ring

import "errors"

// Fatal error categories shared by ring, lwe and rlwe. Every operation that
// can fail at the call site (spec category, not diagnostic-only) returns one
// of these, wrapped with context via fmt.Errorf("...: %w", Err...).
var (
	// ErrInvalidParameter reports a nonsensical p, n, N, k, sigma or
	// data range: wrong shape, wrong ordering, or p > q.
	ErrInvalidParameter = errors.New("tfhe: invalid parameter")

	// ErrParameterMismatch reports a binary operation between ciphertexts
	// (or keys) whose parameters disagree.
	ErrParameterMismatch = errors.New("tfhe: parameter mismatch")

	// ErrNotEncrypted reports decryption of, or arithmetic on, a
	// ciphertext that was never populated by Encrypt or a linear op.
	ErrNotEncrypted = errors.New("tfhe: ciphertext not encrypted")

	// ErrUnsupportedOperand reports an operand combination with no
	// defined semantics (ciphertext x ciphertext, ciphertext x
	// non-integer scalar).
	ErrUnsupportedOperand = errors.New("tfhe: unsupported operand")
)
