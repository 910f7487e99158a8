package s2n

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"

	"github.com/windofthesky/s2n/pkg/crypto/hash"
	"github.com/windofthesky/s2n/pkg/protocol/handshake"
)

// valueKeyMessage assembles the bytes both sides sign: client random,
// server random, then the exact wire encoding of the DH parameters. No
// re-serialization happens here, params must be the literal bytes read
// from or written to the wire.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.3
func valueKeyMessage(clientRandom, serverRandom [handshake.RandomLength]byte, params []byte) []byte {
	plaintext := make([]byte, 0, len(clientRandom)+len(serverRandom)+len(params))
	plaintext = append(plaintext, clientRandom[:]...)
	plaintext = append(plaintext, serverRandom[:]...)
	plaintext = append(plaintext, params...)

	return plaintext
}

// generateKeySignature signs the key exchange transcript with the server's
// RSA private key using PKCS#1 v1.5.
func generateKeySignature(
	clientRandom, serverRandom [handshake.RandomLength]byte,
	params []byte,
	privateKey crypto.PrivateKey,
	hashAlgorithm hash.Algorithm,
) ([]byte, error) {
	signer, ok := privateKey.(crypto.Signer)
	if !ok {
		return nil, errInvalidPrivateKey
	}
	if _, ok := signer.Public().(*rsa.PublicKey); !ok {
		return nil, errInvalidPrivateKey
	}

	hashed := hashAlgorithm.Digest(valueKeyMessage(clientRandom, serverRandom, params))

	return signer.Sign(rand.Reader, hashed, hashAlgorithm.CryptoHash())
}

// verifyKeySignature checks the peer's signature over the key exchange
// transcript.
func verifyKeySignature(
	clientRandom, serverRandom [handshake.RandomLength]byte,
	params, remoteSignature []byte,
	hashAlgorithm hash.Algorithm,
	publicKey *rsa.PublicKey,
) error {
	hashed := hashAlgorithm.Digest(valueKeyMessage(clientRandom, serverRandom, params))
	if rsa.VerifyPKCS1v15(publicKey, hashAlgorithm.CryptoHash(), hashed, remoteSignature) != nil {
		return errServerSignatureInvalid
	}

	return nil
}
