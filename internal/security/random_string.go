package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	// PasswordAlphabet drops characters that are easy to misread.
	PasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	SlugAlphabet     = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var errInvalidAlphabet = errors.New("alphabet must not be empty")

// RandomString draws length characters uniformly from alphabet using crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if alphabet == "" {
		return "", errInvalidAlphabet
	}

	upper := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for index := range out {
		position, err := rand.Int(rand.Reader, upper)
		if err != nil {
			return "", err
		}
		out[index] = alphabet[position.Int64()]
	}
	return string(out), nil
}
