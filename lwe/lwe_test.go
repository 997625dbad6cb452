package lwe_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/tfhe-core/lwe"
	"github.com/tuneinsight/tfhe-core/ring"
	"github.com/tuneinsight/tfhe-core/utils/sampling"
)

func newTestPRNG(t *testing.T, seed byte) sampling.PRNG {
	t.Helper()
	key := make([]byte, sampling.SeedSize)
	for i := range key {
		key[i] = seed + byte(i*3)
	}
	prng, err := sampling.NewKeyedPRNG(key)
	require.NoError(t, err)
	return prng
}

func newTestSetup(t *testing.T) (lwe.Parameters, *lwe.SecretKey, *lwe.Encryptor, *lwe.Decryptor) {
	t.Helper()
	params, err := lwe.NewParameters(256, 1.0/4096.0, 1<<4)
	require.NoError(t, err)

	sk := lwe.NewSecretKey(params, newTestPRNG(t, 1))
	enc := lwe.NewEncryptor(params, sk, newTestPRNG(t, 2))
	dec := lwe.NewDecryptor(params, sk)
	return params, sk, enc, dec
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	for k := uint64(0); k < params.P(); k++ {
		u, ok := ring.FromInt(k, params.P())
		require.True(t, ok)

		ct := enc.Encrypt(u)
		require.True(t, ct.Populated())

		got, err := dec.Decrypt(ct)
		require.NoError(t, err)
		require.Equal(t, k, got.ToInt(params.P()))
	}
}

func TestDecryptEmptyCiphertextFails(t *testing.T) {
	_, _, _, dec := newTestSetup(t)
	ct := &lwe.Ciphertext{}
	_, err := dec.Decrypt(ct)
	require.ErrorIs(t, err, ring.ErrNotEncrypted)
}

func TestAddIsHomomorphic(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	p := params.P()

	u1, _ := ring.FromInt(uint64(3), p)
	u2, _ := ring.FromInt(uint64(5), p)

	c1 := enc.Encrypt(u1)
	c2 := enc.Encrypt(u2)

	sum, err := c1.Add(c2)
	require.NoError(t, err)

	got, err := dec.Decrypt(sum)
	require.NoError(t, err)
	require.Equal(t, uint64(8)%p, got.ToInt(p))
}

func TestSubIsHomomorphic(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	p := params.P()

	u1, _ := ring.FromInt(uint64(9), p)
	u2, _ := ring.FromInt(uint64(4), p)

	c1 := enc.Encrypt(u1)
	c2 := enc.Encrypt(u2)

	diff, err := c1.Sub(c2)
	require.NoError(t, err)

	got, err := dec.Decrypt(diff)
	require.NoError(t, err)
	require.Equal(t, uint64(5), got.ToInt(p))
}

func TestMulScalarIsHomomorphic(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	p := params.P()

	u, _ := ring.FromInt(uint64(3), p)
	ct := enc.Encrypt(u)

	scaled, err := ct.MulScalar(2)
	require.NoError(t, err)

	got, err := dec.Decrypt(scaled)
	require.NoError(t, err)
	require.Equal(t, uint64(6)%p, got.ToInt(p))
}

func TestAddPlaintextAndSubPlaintext(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	p := params.P()

	u, _ := ring.FromInt(uint64(2), p)
	v, _ := ring.FromInt(uint64(7), p)
	ct := enc.Encrypt(u)

	added, err := ct.AddPlaintext(v)
	require.NoError(t, err)
	got, err := dec.Decrypt(added)
	require.NoError(t, err)
	require.Equal(t, uint64(9)%p, got.ToInt(p))

	subbed, err := ct.SubPlaintext(v)
	require.NoError(t, err)
	got, err = dec.Decrypt(subbed)
	require.NoError(t, err)
	require.Equal(t, uint64(11)%p, got.ToInt(p)) // 2-7 mod 16 == 11
}

func TestPlaintextSub(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	p := params.P()

	u, _ := ring.FromInt(uint64(2), p)
	v, _ := ring.FromInt(uint64(7), p)
	ct := enc.Encrypt(u)

	result, err := lwe.PlaintextSub(v, ct)
	require.NoError(t, err)

	got, err := dec.Decrypt(result)
	require.NoError(t, err)
	require.Equal(t, uint64(5), got.ToInt(p)) // 7-2
}

func TestAddParameterMismatch(t *testing.T) {
	params1, err := lwe.NewParameters(128, 1.0/2048.0, 1<<3)
	require.NoError(t, err)
	params2, err := lwe.NewParameters(128, 1.0/2048.0, 1<<4)
	require.NoError(t, err)

	sk1 := lwe.NewSecretKey(params1, newTestPRNG(t, 10))
	sk2 := lwe.NewSecretKey(params2, newTestPRNG(t, 11))
	enc1 := lwe.NewEncryptor(params1, sk1, newTestPRNG(t, 12))
	enc2 := lwe.NewEncryptor(params2, sk2, newTestPRNG(t, 13))

	u1, _ := ring.FromInt(uint64(1), params1.P())
	u2, _ := ring.FromInt(uint64(1), params2.P())

	c1 := enc1.Encrypt(u1)
	c2 := enc2.Encrypt(u2)

	_, err = c1.Add(c2)
	require.ErrorIs(t, err, ring.ErrParameterMismatch)
}

func TestMulCiphertextUnsupported(t *testing.T) {
	params, _, enc, _ := newTestSetup(t)
	u, _ := ring.FromInt(uint64(1), params.P())
	c1 := enc.Encrypt(u)
	c2 := enc.Encrypt(u)

	_, err := c1.Mul(c2)
	require.ErrorIs(t, err, ring.ErrUnsupportedOperand)
}

func TestNegRoundTrips(t *testing.T) {
	params, _, enc, dec := newTestSetup(t)
	p := params.P()

	u, _ := ring.FromInt(uint64(6), p)
	ct := enc.Encrypt(u)

	negated, err := ct.Neg()
	require.NoError(t, err)

	got, err := dec.Decrypt(negated)
	require.NoError(t, err)
	require.Equal(t, (p-6)%p, got.ToInt(p))
}
