package s2n

import (
	"github.com/windofthesky/s2n/internal/cursor"
	"github.com/windofthesky/s2n/pkg/crypto/dhe"
	"github.com/windofthesky/s2n/pkg/protocol/handshake"
)

// handleServerKeyExchange consumes a ServerKeyExchange body from the
// cursor, verifies its signature against the handshake randoms and the raw
// parameter bytes, and populates the pending DH workspace. Any failure is
// terminal for the handshake attempt; the next-state field is only touched
// on the success path.
func (c *Conn) handleServerKeyExchange(cur *cursor.Cursor) error {
	serverKeyExchange := &handshake.MessageServerKeyExchange{}
	if err := serverKeyExchange.Decode(cur, c.state.protocolVersion); err != nil {
		return err
	}

	if c.state.peerPublicKey == nil {
		return errNoPeerPublicKey
	}
	if err := verifyKeySignature(
		c.state.clientRandom, c.state.serverRandom,
		serverKeyExchange.ParamsRegion(), serverKeyExchange.Signature,
		c.state.signatureDigest, c.state.peerPublicKey,
	); err != nil {
		return err
	}

	// The key has authenticated the exchange, drop our only reference.
	c.state.peerPublicKey = nil

	serverDHParams, err := dhe.FromWire(serverKeyExchange.P, serverKeyExchange.G, serverKeyExchange.Ys)
	if err != nil {
		return err
	}
	c.state.serverDHParams = serverDHParams

	c.state.advance(HandshakeServerHelloDone)

	return nil
}

// RecvServerKeyExchange processes an inbound ServerKeyExchange body. On
// success the connection's pending DH workspace is populated and the next
// handshake state is ServerHelloDone. body is borrowed for the duration of
// the call, not retained.
func (c *Conn) RecvServerKeyExchange(body []byte) error {
	c.log.Tracef("recv ServerKeyExchange (%d bytes)", len(body))

	c.buf = cursor.FromBytes(body)
	if err := c.handleServerKeyExchange(c.buf); err != nil {
		c.log.Debugf("ServerKeyExchange rejected: %v", err)

		return err
	}

	return nil
}
