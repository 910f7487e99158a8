// Package signature provides our implemented Signature Algorithms
package signature

// Algorithm as defined in TLS 1.2
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xhtml#tls-parameters-16
type Algorithm uint16

// SignatureAlgorithm enums.
const (
	Anonymous Algorithm = 0
	RSA       Algorithm = 1
	DSA       Algorithm = 2
	ECDSA     Algorithm = 3
)

// String makes Algorithm printable.
func (a Algorithm) String() string {
	switch a {
	case Anonymous:
		return "anonymous"
	case RSA:
		return "rsa"
	case DSA:
		return "dsa"
	case ECDSA:
		return "ecdsa"
	default:
		return "invalid signatureAlgorithm"
	}
}

// Algorithms returns all implemented Signature Algorithms.
func Algorithms() map[Algorithm]struct{} {
	return map[Algorithm]struct{}{
		Anonymous: {},
		RSA:       {},
		DSA:       {},
		ECDSA:     {},
	}
}
