// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword produces a bcrypt hash of the plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword checks a plain text password against a stored hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength reports whether a password meets the minimum
	// requirements for new accounts.
	ValidatePasswordStrength(password string) error
}
