package courier

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// PasswordLength is the length of generated courier passwords.
	PasswordLength = 8

	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GeneratePassword returns PasswordLength characters drawn uniformly from
// [A-Za-z0-9].
func GeneratePassword() (string, error) {
	limit := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, PasswordLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
