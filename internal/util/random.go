package util

import (
	"crypto/rand"
	"math/big"
)

// RandomInt returns a uniform random integer in [min, max].
func RandomInt(min, max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return min
	}
	return min + n.Int64()
}
