package s2n

import (
	"crypto"
	"crypto/rsa"

	"github.com/pion/logging"
	"github.com/windofthesky/s2n/pkg/crypto/dhe"
	"github.com/windofthesky/s2n/pkg/crypto/hash"
	"github.com/windofthesky/s2n/pkg/protocol"
	"github.com/windofthesky/s2n/pkg/protocol/handshake"
)

// Config is used to configure the key exchange for a client or server.
// After a Config is passed to NewConn it must not be modified.
type Config struct {
	// ProtocolVersion is the negotiated protocol version. At Version1_2 the
	// ServerKeyExchange carries explicit hash/signature algorithm bytes.
	ProtocolVersion protocol.Version

	// ClientRandom and ServerRandom are the handshake randoms exchanged in
	// the hello flight. Both sides hash them into the key exchange
	// signature, client first.
	ClientRandom handshake.Random
	ServerRandom handshake.Random

	// DHParameters is the static DH group a server duplicates per
	// connection before generating its ephemeral key. Servers MUST set
	// this, clients ignore it.
	DHParameters *dhe.Parameters

	// PrivateKey signs the DH parameters. Servers MUST set this,
	// only RSA is supported.
	PrivateKey crypto.PrivateKey

	// PeerPublicKey is the server's RSA public key, extracted from its
	// certificate by the certificate flight. Clients MUST set this.
	PeerPublicKey *rsa.PublicKey

	// SignatureDigest is the digest the key exchange signature is computed
	// over. Defaults to SHA-1, the only pair this package emits.
	SignatureDigest hash.Algorithm

	// LoggerFactory customizes the logger for key exchange handling.
	LoggerFactory logging.LoggerFactory
}
