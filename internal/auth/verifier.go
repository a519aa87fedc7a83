package auth

import "crypto/subtle"

// CredentialVerifier checks a presented password against the stored
// credential. The storage layer never depends on how credentials are
// represented; this demo ships the plaintext comparison the dataset
// uses.
type CredentialVerifier interface {
	Verify(stored, presented string) bool
}

// PlaintextVerifier compares credentials byte-for-byte in constant time.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
