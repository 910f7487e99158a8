package s2n

import (
	"crypto/rsa"

	"github.com/windofthesky/s2n/pkg/crypto/dhe"
	"github.com/windofthesky/s2n/pkg/crypto/hash"
	"github.com/windofthesky/s2n/pkg/protocol"
	"github.com/windofthesky/s2n/pkg/protocol/handshake"
)

// HandshakeState is a position in the handshake sequence. This package
// only ever performs the single transition from ServerKeyExchange to
// ServerHelloDone.
type HandshakeState uint8

// HandshakeState enums.
const (
	HandshakeErrored HandshakeState = iota
	HandshakeServerKeyExchange
	HandshakeServerHelloDone
)

func (s HandshakeState) String() string {
	switch s {
	case HandshakeErrored:
		return "Errored"
	case HandshakeServerKeyExchange:
		return "ServerKeyExchange"
	case HandshakeServerHelloDone:
		return "ServerHelloDone"
	default:
		return "Unknown"
	}
}

// State holds the connection state for the key exchange flight. The
// pending fields are populated here and consumed by the handshake steps
// that follow.
type State struct {
	protocolVersion            protocol.Version
	clientRandom, serverRandom [handshake.RandomLength]byte

	currentState HandshakeState
	nextState    HandshakeState

	// pending key exchange workspace
	serverDHParams  *dhe.Parameters
	peerPublicKey   *rsa.PublicKey // dropped once verification succeeds
	signatureDigest hash.Algorithm
}

// advance records the next handshake state. It is only called on the final
// successful line of a send or receive path, never on partial progress.
func (s *State) advance(next HandshakeState) {
	s.nextState = next
}
