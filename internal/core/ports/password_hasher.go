package ports

// PasswordHasher applies a salted one-way transform to plaintext passwords.
// Verify returns false, never an error, for any mismatch including a
// malformed stored hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
