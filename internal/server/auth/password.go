package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches what the previous deployment used when hashing; stored
// hashes carry their own cost, so raising this only affects new hashes.
const bcryptCost = 8

// HashPassword produces a salted, adaptive-cost hash of the plaintext.
// bcrypt generates a fresh salt per call, so hashing the same password twice
// yields two different values.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether password matches the stored hash. A
// malformed hash is simply a non-match, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
