package token

import (
	"crypto/rand"
	"fmt"
)

// refreshAlphabet is the base-58 charset: no 0, O, I or l, so tokens survive
// being read aloud or transcribed.
const refreshAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// RefreshTokenLength is the fixed length of an opaque refresh token.
// 58 symbols at 58 positions gives ~339 bits of entropy.
const RefreshTokenLength = 58

// NewRefreshToken returns a cryptographically unpredictable opaque token.
// It is not a JWT and carries no structure: possession is the capability.
func NewRefreshToken() (string, error) {
	buf := make([]byte, RefreshTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("refresh token entropy: %w", err)
	}
	out := make([]byte, RefreshTokenLength)
	for i, b := range buf {
		out[i] = refreshAlphabet[int(b)%len(refreshAlphabet)]
	}
	return string(out), nil
}
