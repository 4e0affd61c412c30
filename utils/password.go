package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the mobile clients were registered with.
const bcryptCost = 12

// HashPassword hashes a plaintext password. An empty plaintext hashes to the
// empty string: Google Sign-In accounts carry no local credential.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches hash. An empty stored
// hash never verifies, so provider-only accounts cannot log in locally.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
