package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureAlgorithm_String(t *testing.T) {
	for algo := range Algorithms() {
		assert.NotEqual(t, "invalid signatureAlgorithm", algo.String())
	}
	assert.Equal(t, "invalid signatureAlgorithm", Algorithm(250).String())
}

func TestSignatureAlgorithm_Values(t *testing.T) {
	// Wire identifiers from the IANA registry.
	assert.Equal(t, Algorithm(0), Anonymous)
	assert.Equal(t, Algorithm(1), RSA)
	assert.Equal(t, Algorithm(2), DSA)
	assert.Equal(t, Algorithm(3), ECDSA)
}
