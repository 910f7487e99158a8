package dhe

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A tiny group keeps test exponentiation cheap; real groups are exercised
// in the connection round-trip tests.
func smallGroup(t *testing.T) *Parameters {
	t.Helper()

	params, err := NewParameters(big.NewInt(227), big.NewInt(2))
	assert.NoError(t, err)

	return params
}

func TestNewParameters(t *testing.T) {
	for _, tt := range []struct {
		name string
		p, g *big.Int
	}{
		{"NilModulus", nil, big.NewInt(2)},
		{"NilGenerator", big.NewInt(227), nil},
		{"ZeroModulus", big.NewInt(0), big.NewInt(2)},
		{"GeneratorOne", big.NewInt(227), big.NewInt(1)},
		{"GeneratorAboveModulus", big.NewInt(227), big.NewInt(229)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParameters(tt.p, tt.g)
			assert.ErrorIs(t, err, errInvalidParameters)
		})
	}
}

func TestGenerateEphemeralKey(t *testing.T) {
	params := smallGroup(t)

	_, err := params.PublicKey()
	assert.ErrorIs(t, err, errMissingKeypair)

	assert.NoError(t, params.GenerateEphemeralKey())

	public, err := params.PublicKey()
	assert.NoError(t, err)
	assert.Positive(t, public.Sign())
	assert.Negative(t, public.Cmp(params.P))
}

func TestCopyIsIndependent(t *testing.T) {
	group := RFC5114Group2048()
	dup := group.Copy()

	assert.Equal(t, 0, group.P.Cmp(dup.P))
	assert.Equal(t, 0, group.G.Cmp(dup.G))
	assert.Equal(t, 0, group.Q.Cmp(dup.Q))

	// Mutating the copy must not reach the shared group.
	dup.P.Add(dup.P, big.NewInt(2))
	assert.NotEqual(t, 0, group.P.Cmp(dup.P))

	// Keypair material never travels with a copy.
	assert.NoError(t, dup.GenerateEphemeralKey())
	_, err := group.PublicKey()
	assert.ErrorIs(t, err, errMissingKeypair)
	_, err = dup.Copy().PublicKey()
	assert.ErrorIs(t, err, errMissingKeypair)
}

func TestFromWire(t *testing.T) {
	params, err := FromWire([]byte{0x00, 0xE3}, []byte{0x02}, []byte{0x09})
	assert.NoError(t, err)
	assert.Equal(t, int64(227), params.P.Int64())
	assert.Equal(t, int64(2), params.G.Int64())

	public, err := params.PublicKey()
	assert.NoError(t, err)
	assert.Equal(t, int64(9), public.Int64())
}

func TestFromWireRejectsInvalid(t *testing.T) {
	p := []byte{0xE3}
	g := []byte{0x02}
	ys := []byte{0x09}

	for _, tt := range []struct {
		name     string
		p, g, ys []byte
	}{
		{"EmptyP", nil, g, ys},
		{"EmptyG", p, nil, ys},
		{"EmptyYs", p, g, nil},
		{"ZeroP", []byte{0x00}, g, ys},
		{"ZeroYs", p, g, []byte{0x00}},
		{"GeneratorAboveModulus", p, []byte{0xE4}, ys},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromWire(tt.p, tt.g, tt.ys)
			assert.Error(t, err)
		})
	}
}

func TestWireValues(t *testing.T) {
	params := smallGroup(t)

	_, _, _, err := params.WireValues()
	assert.ErrorIs(t, err, errMissingKeypair)

	assert.NoError(t, params.GenerateEphemeralKey())
	pBytes, gBytes, yBytes, err := params.WireValues()
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xE3}, pBytes)
	assert.Equal(t, []byte{0x02}, gBytes)
	assert.NotEmpty(t, yBytes)
}

func TestSharedSecretAgreement(t *testing.T) {
	group := smallGroup(t)

	alice := group.Copy()
	bob := group.Copy()
	assert.NoError(t, alice.GenerateEphemeralKey())
	assert.NoError(t, bob.GenerateEphemeralKey())

	alicePublic, err := alice.PublicKey()
	assert.NoError(t, err)
	bobPublic, err := bob.PublicKey()
	assert.NoError(t, err)

	secretA, err := alice.SharedSecret(bobPublic)
	assert.NoError(t, err)
	secretB, err := bob.SharedSecret(alicePublic)
	assert.NoError(t, err)
	assert.Equal(t, secretA, secretB)
}

func TestSharedSecretRejectsBadPublic(t *testing.T) {
	params := smallGroup(t)
	assert.NoError(t, params.GenerateEphemeralKey())

	_, err := params.SharedSecret(nil)
	assert.ErrorIs(t, err, errInvalidPublicKey)
	_, err = params.SharedSecret(big.NewInt(0))
	assert.ErrorIs(t, err, errInvalidPublicKey)
	_, err = params.SharedSecret(params.P)
	assert.ErrorIs(t, err, errInvalidPublicKey)

	_, err = smallGroup(t).SharedSecret(big.NewInt(4))
	assert.ErrorIs(t, err, errMissingKeypair)
}
