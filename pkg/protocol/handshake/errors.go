package handshake

import (
	"errors"

	"github.com/windofthesky/s2n/pkg/protocol"
)

// Typed errors.
var (
	errInvalidSignatureAlgorithm = &protocol.PolicyError{Err: errors.New("unsupported non-RSA signature algorithm")} //nolint:gochecknoglobals
	errInvalidHashAlgorithm      = &protocol.PolicyError{Err: errors.New("unsupported non-SHA1 hash algorithm")}     //nolint:gochecknoglobals
	errSignatureUnset            = &protocol.CryptoOpError{Err: errors.New("signature unset, unable to encode")}     //nolint:gochecknoglobals
)
