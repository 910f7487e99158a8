package s2n

import (
	"crypto/rsa"
	"fmt"

	"github.com/windofthesky/s2n/internal/cursor"
	"github.com/windofthesky/s2n/pkg/crypto/hash"
	"github.com/windofthesky/s2n/pkg/crypto/signature"
	"github.com/windofthesky/s2n/pkg/protocol"
	"github.com/windofthesky/s2n/pkg/protocol/handshake"
)

// generateServerKeyExchange encodes a fresh ephemeral key exchange into
// the cursor and signs the written parameter bytes. The group from config
// is duplicated first so the connection owns its parameters independently.
func (c *Conn) generateServerKeyExchange(cur *cursor.Cursor) error {
	if c.dhParameters == nil {
		return errNoDHParameters
	}
	if c.privateKey == nil {
		return errNoPrivateKey
	}

	serverDHParams := c.dhParameters.Copy()
	c.state.serverDHParams = serverDHParams
	if err := serverDHParams.GenerateEphemeralKey(); err != nil {
		return err
	}

	pBytes, gBytes, yBytes, err := serverDHParams.WireValues()
	if err != nil {
		return err
	}

	serverKeyExchange := &handshake.MessageServerKeyExchange{
		P:                  pBytes,
		G:                  gBytes,
		Ys:                 yBytes,
		HashAlgorithm:      hash.SHA1,
		SignatureAlgorithm: signature.RSA,
	}
	if err := serverKeyExchange.EncodeParams(cur, c.state.protocolVersion); err != nil {
		return err
	}

	sig, err := generateKeySignature(
		c.state.clientRandom, c.state.serverRandom,
		serverKeyExchange.ParamsRegion(), c.privateKey, c.state.signatureDigest,
	)
	if err != nil {
		return &protocol.CryptoOpError{Err: fmt.Errorf("failed to sign DH parameters: %w", err)}
	}
	serverKeyExchange.Signature = sig
	if err := serverKeyExchange.EncodeSignature(cur); err != nil {
		return err
	}

	c.state.advance(HandshakeServerHelloDone)

	return nil
}

// SendServerKeyExchange produces the wire-encoded ServerKeyExchange body.
// On success the next handshake state is ServerHelloDone. The returned
// slice aliases the connection's flight buffer and is valid until the next
// handshake operation on this Conn.
func (c *Conn) SendServerKeyExchange() ([]byte, error) {
	c.buf = cursor.New(c.serverKeyExchangeCapacity())
	if err := c.generateServerKeyExchange(c.buf); err != nil {
		c.log.Debugf("ServerKeyExchange not sent: %v", err)

		return nil, err
	}
	c.log.Tracef("send ServerKeyExchange (%d bytes)", len(c.buf.Bytes()))

	return c.buf.Bytes(), nil
}

// serverKeyExchangeCapacity sizes the flight buffer: three length-prefixed
// values no larger than the modulus, two algorithm bytes, and a
// length-prefixed signature of the key's size.
func (c *Conn) serverKeyExchangeCapacity() int {
	if c.dhParameters == nil || c.dhParameters.P == nil {
		return 0
	}
	modulusLen := (c.dhParameters.P.BitLen() + 7) / 8
	signatureLen := 0
	if key, ok := c.privateKey.(*rsa.PrivateKey); ok {
		signatureLen = key.Size()
	}

	return 3*(2+modulusLen) + 2 + 2 + signatureLen
}
