package core

// PasswordHasher turns passwords into salted one-way digests and verifies them
type PasswordHasher interface {
	// Hash returns a digest of the password; two calls with the same input differ by salt
	Hash(password string) ([]byte, error)
	// Compare reports whether password produces the stored digest
	Compare(digest []byte, password string) bool
}
