package rlwe_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/tfhe-core/ring"
	"github.com/tuneinsight/tfhe-core/rlwe"
	"github.com/tuneinsight/tfhe-core/utils/sampling"
)

func newTestPRNG(t *testing.T, seed byte) sampling.PRNG {
	t.Helper()
	key := make([]byte, sampling.SeedSize)
	for i := range key {
		key[i] = seed + byte(i*5)
	}
	prng, err := sampling.NewKeyedPRNG(key)
	require.NoError(t, err)
	return prng
}

func newTestSetup(t *testing.T) (rlwe.Parameters, *rlwe.SecretKey, *rlwe.Encryptor, *rlwe.Decryptor) {
	t.Helper()
	params, err := rlwe.NewParameters(16, 1, 1.0/4096.0, 1<<4)
	require.NoError(t, err)

	sk := rlwe.NewSecretKey(params, newTestPRNG(t, 1))
	enc := rlwe.NewEncryptor(params, sk, newTestPRNG(t, 2))
	dec := rlwe.NewDecryptor(params, sk)
	return params, sk, enc, dec
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	values := make([]uint64, params.N())
	for i := range values {
		values[i] = uint64(i) % params.P()
	}
	m, ok := ring.FromSequenceInt(values, params.P())
	require.True(t, ok)

	ct, err := enc.Encrypt(m)
	require.NoError(t, err)
	require.True(t, ct.Populated())

	got, err := dec.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, values, got.ToInt(params.P()))

	// The decrypted plaintext Polynomial should be structurally identical to
	// the original encoding, not merely equal after ToInt decoding.
	diff := cmp.Diff(m, got, cmp.AllowUnexported(ring.Polynomial{}, ring.Element{}))
	require.Empty(t, diff)
}

func TestDecryptEmptyCiphertextFails(t *testing.T) {
	_, _, _, dec := newTestSetup(t)
	ct := &rlwe.Ciphertext{}
	_, err := dec.Decrypt(ct)
	require.ErrorIs(t, err, ring.ErrNotEncrypted)
}

func TestAddIsHomomorphic(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	p := params.P()

	m1, _ := ring.FromScalarInt(uint64(3), p, params.N())
	m2, _ := ring.FromScalarInt(uint64(5), p, params.N())

	c1, err := enc.Encrypt(m1)
	require.NoError(t, err)
	c2, err := enc.Encrypt(m2)
	require.NoError(t, err)

	sum, err := c1.Add(c2)
	require.NoError(t, err)

	got, err := dec.Decrypt(sum)
	require.NoError(t, err)
	for _, k := range got.ToInt(p) {
		require.Equal(t, uint64(8)%p, k)
	}
}

func TestSubIsHomomorphic(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	p := params.P()

	m1, _ := ring.FromScalarInt(uint64(9), p, params.N())
	m2, _ := ring.FromScalarInt(uint64(4), p, params.N())

	c1, err := enc.Encrypt(m1)
	require.NoError(t, err)
	c2, err := enc.Encrypt(m2)
	require.NoError(t, err)

	diff, err := c1.Sub(c2)
	require.NoError(t, err)

	got, err := dec.Decrypt(diff)
	require.NoError(t, err)
	for _, k := range got.ToInt(p) {
		require.Equal(t, uint64(5), k)
	}
}

func TestMulScalarIsHomomorphic(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	p := params.P()

	m, _ := ring.FromScalarInt(uint64(3), p, params.N())
	ct, err := enc.Encrypt(m)
	require.NoError(t, err)

	scaled, err := ct.MulScalar(2)
	require.NoError(t, err)

	got, err := dec.Decrypt(scaled)
	require.NoError(t, err)
	for _, k := range got.ToInt(p) {
		require.Equal(t, uint64(6)%p, k)
	}
}

func TestPlaintextSub(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	p := params.P()

	m, _ := ring.FromScalarInt(uint64(2), p, params.N())
	v, _ := ring.FromScalarInt(uint64(7), p, params.N())
	ct, err := enc.Encrypt(m)
	require.NoError(t, err)

	result, err := rlwe.PlaintextSub(v, ct)
	require.NoError(t, err)

	got, err := dec.Decrypt(result)
	require.NoError(t, err)
	for _, k := range got.ToInt(p) {
		require.Equal(t, uint64(5), k) // 7-2
	}
}

func TestMulCiphertextUnsupported(t *testing.T) {
	params, _, enc, _ := newTestSetup(t)
	m, _ := ring.FromScalarInt(uint64(1), params.P(), params.N())
	c1, err := enc.Encrypt(m)
	require.NoError(t, err)
	c2, err := enc.Encrypt(m)
	require.NoError(t, err)

	_, err = c1.Mul(c2)
	require.ErrorIs(t, err, ring.ErrUnsupportedOperand)
}

func TestAddParameterMismatch(t *testing.T) {
	params1, err := rlwe.NewParameters(16, 1, 1.0/2048.0, 1<<3)
	require.NoError(t, err)
	params2, err := rlwe.NewParameters(16, 1, 1.0/2048.0, 1<<4)
	require.NoError(t, err)

	sk1 := rlwe.NewSecretKey(params1, newTestPRNG(t, 10))
	sk2 := rlwe.NewSecretKey(params2, newTestPRNG(t, 11))
	enc1 := rlwe.NewEncryptor(params1, sk1, newTestPRNG(t, 12))
	enc2 := rlwe.NewEncryptor(params2, sk2, newTestPRNG(t, 13))

	m1, _ := ring.FromScalarInt(uint64(1), params1.P(), params1.N())
	m2, _ := ring.FromScalarInt(uint64(1), params2.P(), params2.N())

	c1, err := enc1.Encrypt(m1)
	require.NoError(t, err)
	c2, err := enc2.Encrypt(m2)
	require.NoError(t, err)

	_, err = c1.Add(c2)
	require.ErrorIs(t, err, ring.ErrParameterMismatch)
}
