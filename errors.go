package s2n

import (
	"errors"

	"github.com/windofthesky/s2n/pkg/protocol"
)

// DecodeError indicates truncated or malformed wire data.
type DecodeError = protocol.DecodeError

// PolicyError indicates an unsupported algorithm identifier on the wire.
type PolicyError = protocol.PolicyError

// AuthError indicates that signature verification failed.
type AuthError = protocol.AuthError

// CryptoOpError indicates a failure in a cryptographic collaborator.
type CryptoOpError = protocol.CryptoOpError

// ResourceError indicates the outbound buffer ran out of capacity.
type ResourceError = protocol.ResourceError

// Typed errors.
var (
	//nolint:err113
	errNoConfig = &CryptoOpError{Err: errors.New("no config provided")}
	//nolint:err113
	errUnsupportedProtocolVersion = &CryptoOpError{Err: errors.New("unsupported protocol version")}
	//nolint:err113
	errNoDHParameters = &CryptoOpError{Err: errors.New("DH parameters are not configured")}
	//nolint:err113
	errNoPrivateKey = &CryptoOpError{Err: errors.New("no private key configured to sign the key exchange")}
	//nolint:err113
	errNoPeerPublicKey = &CryptoOpError{Err: errors.New("no peer public key available to verify the key exchange")}
	//nolint:err113
	errServerSignatureInvalid = &AuthError{Err: errors.New("server signature is invalid")}

	// plain errors, wrapped into a taxonomy type at the call site
	errInvalidPrivateKey = errors.New("private key does not support RSA signing") //nolint:err113
)
