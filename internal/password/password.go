package password

import "golang.org/x/crypto/bcrypt"

// Hash returns a bcrypt hash of the plaintext. bcrypt embeds a fresh random
// salt in every digest, so hashing the same password twice yields different
// strings.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches the stored bcrypt digest.
// The comparison inside bcrypt is constant time.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
