package protocol

import (
	"fmt"
	"net"
)

// Every error raised while producing or consuming a key exchange message is
// fatal to the current handshake attempt. The types below classify the
// failure so callers can tell wire corruption apart from authentication
// failure without parsing strings.

// DecodeError indicates truncated or malformed wire data, usually a read
// past the end of the inbound buffer.
type DecodeError struct {
	Err error
}

// PolicyError indicates well-formed wire data carrying an algorithm
// identifier this implementation does not accept.
type PolicyError struct {
	Err error
}

// AuthError indicates that signature verification failed. The peer could
// not prove possession of the key that authenticates the exchange.
type AuthError struct {
	Err error
}

// CryptoOpError indicates a failure inside a cryptographic collaborator:
// key generation, signing, or parameter transcoding.
type CryptoOpError struct {
	Err error
}

// ResourceError indicates the outbound buffer ran out of capacity while
// encoding.
type ResourceError struct {
	Err error
}

// Timeout implements net.Error.Timeout().
func (*DecodeError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (*DecodeError) Temporary() bool { return false }

// Unwrap returns the wrapped error.
func (e *DecodeError) Unwrap() error { return e.Err }

// Error implements error.
func (e *DecodeError) Error() string { return fmt.Sprintf("decode error: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (*PolicyError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (*PolicyError) Temporary() bool { return false }

// Unwrap returns the wrapped error.
func (e *PolicyError) Unwrap() error { return e.Err }

// Error implements error.
func (e *PolicyError) Error() string { return fmt.Sprintf("policy error: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (*AuthError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (*AuthError) Temporary() bool { return false }

// Unwrap returns the wrapped error.
func (e *AuthError) Unwrap() error { return e.Err }

// Error implements error.
func (e *AuthError) Error() string { return fmt.Sprintf("auth error: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (*CryptoOpError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (*CryptoOpError) Temporary() bool { return false }

// Unwrap returns the wrapped error.
func (e *CryptoOpError) Unwrap() error { return e.Err }

// Error implements error.
func (e *CryptoOpError) Error() string { return fmt.Sprintf("crypto error: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (*ResourceError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (*ResourceError) Temporary() bool { return false }

// Unwrap returns the wrapped error.
func (e *ResourceError) Unwrap() error { return e.Err }

// Error implements error.
func (e *ResourceError) Error() string { return fmt.Sprintf("resource error: %v", e.Err) }

var (
	_ net.Error = (*DecodeError)(nil)
	_ net.Error = (*PolicyError)(nil)
	_ net.Error = (*AuthError)(nil)
	_ net.Error = (*CryptoOpError)(nil)
	_ net.Error = (*ResourceError)(nil)
)
