package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes plain with bcrypt at the default cost. bcrypt rejects
// inputs over 72 bytes, so callers bound password length before hashing.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword reports whether plain matches hash; any error is a mismatch.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
