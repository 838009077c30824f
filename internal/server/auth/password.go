package auth

import "golang.org/x/crypto/bcrypt"

// HashSecret produces a salted one-way digest of the given secret. bcrypt
// salts per call, so hashing the same input twice yields different digests.
// No length or character-set validation happens here.
func HashSecret(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckSecret reports whether digest was produced from plain. Malformed
// digests return false rather than an error. Comparison time does not depend
// on how much of the input matches.
func CheckSecret(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
