package utils

import (
	"crypto/rand"
	"math/big"
)

const tempPasswordLength = 12
const tempPasswordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTempPassword produces the one-time credential handed to a newly
// created student. Always crypto/rand, never anything derived from the
// student's own details.
func GenerateTempPassword() (string, error) {
	b := make([]byte, tempPasswordLength)
	max := big.NewInt(int64(len(tempPasswordChars)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = tempPasswordChars[n.Int64()]
	}
	return string(b), nil
}
