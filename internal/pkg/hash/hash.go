package hash

// Hash is the contract for one-way hashing and verification of secrets.
type Hash interface {
	// Hash derives a hash from the plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the previously hashed value.
	Verify(hashed, plaintext string) bool
}
