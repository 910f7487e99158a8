package s2n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/windofthesky/s2n/pkg/crypto/hash"
)

func TestValueKeyMessage(t *testing.T) {
	clientRandom, serverRandom := testRandoms()
	params := []byte{0x00, 0x01, 0x02}

	msg := valueKeyMessage(clientRandom.MarshalFixed(), serverRandom.MarshalFixed(), params)
	assert.Equal(t, 32+32+len(params), len(msg))

	// client random, server random, then the raw parameter bytes, in order
	for _, b := range msg[:32] {
		assert.Equal(t, uint8(0x11), b)
	}
	for _, b := range msg[32:64] {
		assert.Equal(t, uint8(0x22), b)
	}
	assert.Equal(t, params, msg[64:])
}

func TestGenerateAndVerifyKeySignature(t *testing.T) {
	key := testKey(t)
	clientRandom, serverRandom := testRandoms()
	params := []byte{0x00, 0x01, 0xE3, 0x00, 0x01, 0x02, 0x00, 0x01, 0x09}

	sig, err := generateKeySignature(
		clientRandom.MarshalFixed(), serverRandom.MarshalFixed(), params, key, hash.SHA1,
	)
	assert.NoError(t, err)
	assert.Equal(t, key.Size(), len(sig))

	assert.NoError(t, verifyKeySignature(
		clientRandom.MarshalFixed(), serverRandom.MarshalFixed(), params, sig, hash.SHA1, &key.PublicKey,
	))

	// Any transcript mismatch must fail verification.
	assert.ErrorIs(t, verifyKeySignature(
		serverRandom.MarshalFixed(), clientRandom.MarshalFixed(), params, sig, hash.SHA1, &key.PublicKey,
	), errServerSignatureInvalid)

	tampered := append([]byte{}, params...)
	tampered[2] ^= 0x01
	assert.ErrorIs(t, verifyKeySignature(
		clientRandom.MarshalFixed(), serverRandom.MarshalFixed(), tampered, sig, hash.SHA1, &key.PublicKey,
	), errServerSignatureInvalid)
}

func TestGenerateKeySignatureRejectsNonSigner(t *testing.T) {
	clientRandom, serverRandom := testRandoms()

	_, err := generateKeySignature(
		clientRandom.MarshalFixed(), serverRandom.MarshalFixed(), []byte{0x01}, struct{}{}, hash.SHA1,
	)
	assert.ErrorIs(t, err, errInvalidPrivateKey)
}
