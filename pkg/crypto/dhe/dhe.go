// Package dhe provides finite-field Diffie-Hellman key agreement for TLS
package dhe

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/windofthesky/s2n/pkg/protocol"
)

// Typed errors.
var (
	errInvalidParameters = &protocol.CryptoOpError{Err: errors.New("invalid DH parameters")}          //nolint:gochecknoglobals
	errInvalidPublicKey  = &protocol.CryptoOpError{Err: errors.New("DH public key out of range")}     //nolint:gochecknoglobals
	errMissingKeypair    = &protocol.CryptoOpError{Err: errors.New("DH keypair has not been generated")} //nolint:gochecknoglobals
)

var one = big.NewInt(1) //nolint:gochecknoglobals

// Parameters is a DH group with an optional ephemeral keypair. The group
// (P, G and the optional subgroup order Q) is shared configuration; the
// keypair is always per-connection.
type Parameters struct {
	P, G *big.Int

	// Q is the order of the prime-order subgroup generated by G, when the
	// group publishes one. Ephemeral keys are sampled from Q if set.
	Q *big.Int

	publicKey  *big.Int
	privateKey *big.Int
}

// NewParameters builds a group from a prime modulus and generator.
func NewParameters(p, g *big.Int) (*Parameters, error) {
	if p == nil || g == nil || p.Sign() <= 0 || g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return nil, errInvalidParameters
	}

	return &Parameters{P: p, G: g}, nil
}

// RFC5114Group2048 returns the 2048-bit MODP group with 256-bit prime
// order subgroup from RFC 5114, Section 2.3.
func RFC5114Group2048() *Parameters {
	p, _ := new(big.Int).SetString("87A8E61DB4B6663CFFBBD19C651959998CEEF608660DD0F25D2CEED4435E3B00E00DF8F1D61957D4FAF7DF4561B2AA3016C3D91134096FAA3BF4296D830E9A7C209E0C6497517ABD5A8A9D306BCF67ED91F9E6725B4758C022E0B1EF4275BF7B6C5BFC11D45F9088B941F54EB1E59BB8BC39A0BF12307F5C4FDB70C581B23F76B63ACAE1CAA6B7902D52526735488A0EF13C6D9A51BFA4AB3AD8347796524D8EF6A167B5A41825D967E144E5140564251CCACB83E6B486F6B3CA3F7971506026C0B857F689962856DED4010ABD0BE621C3A3960A54E710C375F26375D7014103A4B54330C198AF126116D2276E11715F693877FAD7EF09CADB094AE91E1A1597", 16)
	g, _ := new(big.Int).SetString("3FB32C9B73134D0B2E77506660EDBD484CA7B18F21EF205407F4793A1A0BA12510DBC15077BE463FFF4FED4AAC0BB555BE3A6C1B0C6B47B1BC3773BF7E8C6F62901228F8C28CBB18A55AE31341000A650196F931C77A57F2DDF463E5E9EC144B777DE62AAAB8A8628AC376D282D6ED3864E67982428EBC831D14348F6F2F9193B5045AF2767164E1DFC967C1FB3F2E55A4BD1BFFE83B9C80D052B985D182EA0ADB2A3B7313D3FE14C8484B1E052588B9B7D2BBD2DF016199ECD06E1557CD0915B3353BBB64E0EC377FD028370DF92B52C7891428CDC67EB6184B523D1DB246C32F63078490F00EF8D647D148D47954515E2327CFEF98C582664B4C0F6CC41659", 16)
	q, _ := new(big.Int).SetString("8CF83642A709A097B447997640129DA299B1A47D1EB3750BA308B0FE64F5FBD3", 16)

	return &Parameters{P: p, G: g, Q: q}
}

// Copy duplicates the group so a connection can hold its own independently
// owned instance. Keypair material is never copied.
func (p *Parameters) Copy() *Parameters {
	dup := &Parameters{
		P: new(big.Int).Set(p.P),
		G: new(big.Int).Set(p.G),
	}
	if p.Q != nil {
		dup.Q = new(big.Int).Set(p.Q)
	}

	return dup
}

// GenerateEphemeralKey generates a fresh keypair for this group. The key is
// single-use and must never be shared between connections.
func (p *Parameters) GenerateEphemeralKey() error {
	if p.P == nil || p.G == nil {
		return errInvalidParameters
	}

	// Sample from the subgroup order when the group publishes one,
	// otherwise from [1, P-2].
	limit := p.Q
	if limit == nil {
		limit = new(big.Int).Sub(p.P, big.NewInt(2))
	}
	x, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return &protocol.CryptoOpError{Err: err}
	}
	x.Add(x, one)

	p.privateKey = x
	p.publicKey = new(big.Int).Exp(p.G, x, p.P)

	return nil
}

// PublicKey returns the public value Y of the generated keypair.
func (p *Parameters) PublicKey() (*big.Int, error) {
	if p.publicKey == nil {
		return nil, errMissingKeypair
	}

	return p.publicKey, nil
}

// FromWire transcodes the raw big-endian (p, g, Ys) triplet received on the
// wire into validated Parameters holding the peer's public key. Empty or
// zero values are structurally legal on the wire but cryptographically
// invalid, so they are rejected here.
func FromWire(pRaw, gRaw, ysRaw []byte) (*Parameters, error) {
	if len(pRaw) == 0 || len(gRaw) == 0 || len(ysRaw) == 0 {
		return nil, errInvalidParameters
	}

	params, err := NewParameters(new(big.Int).SetBytes(pRaw), new(big.Int).SetBytes(gRaw))
	if err != nil {
		return nil, err
	}

	ys := new(big.Int).SetBytes(ysRaw)
	if ys.Sign() <= 0 {
		return nil, errInvalidPublicKey
	}
	params.publicKey = ys

	return params, nil
}

// WireValues returns the big-endian encodings of P, G and the public key Y,
// ready to be length-prefixed onto the wire.
func (p *Parameters) WireValues() (pBytes, gBytes, yBytes []byte, err error) {
	if p.P == nil || p.G == nil {
		return nil, nil, nil, errInvalidParameters
	}
	if p.publicKey == nil {
		return nil, nil, nil, errMissingKeypair
	}

	return p.P.Bytes(), p.G.Bytes(), p.publicKey.Bytes(), nil
}

// SharedSecret computes the DH shared secret between our private key and
// the peer's public value.
func (p *Parameters) SharedSecret(peerPublic *big.Int) ([]byte, error) {
	if p.privateKey == nil {
		return nil, errMissingKeypair
	}
	if peerPublic == nil || peerPublic.Sign() <= 0 || peerPublic.Cmp(p.P) >= 0 {
		return nil, errInvalidPublicKey
	}

	return new(big.Int).Exp(peerPublic, p.privateKey, p.P).Bytes(), nil
}
