package service

// PasswordHasher defines the interface for hashing and verifying login
// passwords.
type PasswordHasher interface {
	// Hash derives a one-way hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	Compare(hashedPassword, password string) error
}
