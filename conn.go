// Package s2n implements production and consumption of the TLS
// ServerKeyExchange message for ephemeral Diffie-Hellman key agreement,
// authenticated by an RSA signature over the key exchange parameters and
// the handshake randoms.
package s2n

import (
	"crypto"

	"github.com/pion/logging"
	"github.com/windofthesky/s2n/internal/cursor"
	"github.com/windofthesky/s2n/pkg/crypto/dhe"
	"github.com/windofthesky/s2n/pkg/crypto/hash"
	"github.com/windofthesky/s2n/pkg/protocol"
)

// Conn represents a connection progressing through the key exchange
// flight. It is not safe for concurrent use; handshake steps on one Conn
// must be invoked sequentially.
type Conn struct {
	state State
	buf   *cursor.Cursor // handshake flight buffer, one flight at a time

	dhParameters *dhe.Parameters  // shared server group, duplicated per connection
	privateKey   crypto.PrivateKey

	log logging.LeveledLogger
}

// NewConn builds a Conn from config. The config's randoms, version and key
// material must already be established by the preceding handshake flights.
func NewConn(config *Config) (*Conn, error) {
	if config == nil {
		return nil, errNoConfig
	}
	if !protocol.IsSupportedVersion(config.ProtocolVersion) {
		return nil, errUnsupportedProtocolVersion
	}

	signatureDigest := config.SignatureDigest
	if signatureDigest == hash.None {
		signatureDigest = hash.SHA1
	}

	loggerFactory := config.LoggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	clientRandom := config.ClientRandom
	serverRandom := config.ServerRandom

	return &Conn{
		state: State{
			protocolVersion: config.ProtocolVersion,
			clientRandom:    clientRandom.MarshalFixed(),
			serverRandom:    serverRandom.MarshalFixed(),
			currentState:    HandshakeServerKeyExchange,
			peerPublicKey:   config.PeerPublicKey,
			signatureDigest: signatureDigest,
		},
		dhParameters: config.DHParameters,
		privateKey:   config.PrivateKey,
		log:          loggerFactory.NewLogger("keyx"),
	}, nil
}

// NextState returns the handshake state the connection advances to once a
// key exchange message has been produced or consumed successfully.
func (c *Conn) NextState() HandshakeState {
	return c.state.nextState
}

// ServerDHParams returns the pending DH workspace populated by the key
// exchange, for consumption by the ClientKeyExchange step.
func (c *Conn) ServerDHParams() *dhe.Parameters {
	return c.state.serverDHParams
}
