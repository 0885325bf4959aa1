package services

import "golang.org/x/crypto/bcrypt"

// bcryptCost keeps hashing in the tens-of-milliseconds range.
const bcryptCost = 10

// HashPassword one-way transforms a plaintext password for storage.
// There is no decrypt path.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
