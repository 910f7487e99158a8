package handshake

import (
	"github.com/windofthesky/s2n/internal/cursor"
	"github.com/windofthesky/s2n/pkg/crypto/hash"
	"github.com/windofthesky/s2n/pkg/crypto/signature"
	"github.com/windofthesky/s2n/pkg/protocol"
)

// MessageServerKeyExchange carries the server's ephemeral DH parameters
// (p, g, Ys), each a 16-bit length-prefixed big-endian integer, followed by
// an RSA signature over the handshake randoms and those exact parameter
// bytes. At TLS 1.2 the hash/signature algorithm pair is carried explicitly
// between the parameters and the signature; before 1.2 it is implicit.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.3
type MessageServerKeyExchange struct {
	P, G, Ys           []byte
	HashAlgorithm      hash.Algorithm
	SignatureAlgorithm signature.Algorithm
	Signature          []byte

	paramsRegion []byte
}

// Type returns the Handshake Type.
func (m MessageServerKeyExchange) Type() Type {
	return TypeServerKeyExchange
}

// ParamsRegion returns the exact wire bytes of the length-prefixed (p, g,
// Ys) triplet, excluding any algorithm identifiers or signature. This is
// the region both sides hash; it aliases the cursor's buffer and must be
// consumed before that buffer goes away.
func (m *MessageServerKeyExchange) ParamsRegion() []byte {
	return m.paramsRegion
}

// Decode populates the message from the cursor. P, G, Ys and Signature are
// views into the cursor's buffer, not copies. At TLS 1.2 the algorithm
// identifiers are validated before anything else is done with the
// parameters; only the RSA / SHA-1 pair is accepted.
func (m *MessageServerKeyExchange) Decode(cur *cursor.Cursor, version protocol.Version) error {
	anchor := cur.ReadOffset()

	pLen, err := cur.ReadUint16()
	if err != nil {
		return err
	}
	if m.P, err = cur.ReadBytes(int(pLen)); err != nil {
		return err
	}

	gLen, err := cur.ReadUint16()
	if err != nil {
		return err
	}
	if m.G, err = cur.ReadBytes(int(gLen)); err != nil {
		return err
	}

	ysLen, err := cur.ReadUint16()
	if err != nil {
		return err
	}
	if m.Ys, err = cur.ReadBytes(int(ysLen)); err != nil {
		return err
	}

	// Now the total size of the signed parameter region is known.
	regionLen := 2 + int(pLen) + 2 + int(gLen) + 2 + int(ysLen)
	if m.paramsRegion, err = cur.View(anchor, regionLen); err != nil {
		return err
	}

	if version.Equal(protocol.Version1_2) {
		hashID, err := cur.ReadUint8()
		if err != nil {
			return err
		}
		sigID, err := cur.ReadUint8()
		if err != nil {
			return err
		}
		if signature.Algorithm(sigID) != signature.RSA {
			return errInvalidSignatureAlgorithm
		}
		if hash.Algorithm(hashID) != hash.SHA1 {
			return errInvalidHashAlgorithm
		}
		m.HashAlgorithm = hash.Algorithm(hashID)
		m.SignatureAlgorithm = signature.Algorithm(sigID)
	} else {
		// Implicit fixed pair before TLS 1.2.
		m.HashAlgorithm = hash.SHA1
		m.SignatureAlgorithm = signature.RSA
	}

	sigLen, err := cur.ReadUint16()
	if err != nil {
		return err
	}
	if m.Signature, err = cur.ReadBytes(int(sigLen)); err != nil {
		return err
	}

	return nil
}

// EncodeParams writes the length-prefixed (p, g, Ys) triplet and, at TLS
// 1.2, the algorithm identifier bytes. The exact written parameter bytes
// are anchored and available via ParamsRegion for signing.
func (m *MessageServerKeyExchange) EncodeParams(cur *cursor.Cursor, version protocol.Version) error {
	anchor := cur.WriteOffset()

	for _, value := range [][]byte{m.P, m.G, m.Ys} {
		if err := cur.WriteUint16(uint16(len(value))); err != nil { //nolint:gosec // G115
			return err
		}
		if err := cur.WriteBytes(value); err != nil {
			return err
		}
	}

	var err error
	if m.paramsRegion, err = cur.View(anchor, cur.WriteOffset()-anchor); err != nil {
		return err
	}

	if version.Equal(protocol.Version1_2) {
		if err := cur.WriteUint8(uint8(m.HashAlgorithm)); err != nil { //nolint:gosec // G115
			return err
		}
		if err := cur.WriteUint8(uint8(m.SignatureAlgorithm)); err != nil { //nolint:gosec // G115
			return err
		}
	}

	return nil
}

// EncodeSignature writes the 16-bit signature length and the signature
// bytes. It must be called after EncodeParams, once Signature is set.
func (m *MessageServerKeyExchange) EncodeSignature(cur *cursor.Cursor) error {
	if m.Signature == nil {
		return errSignatureUnset
	}

	if err := cur.WriteUint16(uint16(len(m.Signature))); err != nil { //nolint:gosec // G115
		return err
	}

	return cur.WriteBytes(m.Signature)
}
