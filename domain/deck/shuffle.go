package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// CryptoShuffler is a Shuffler backed by the Ed25519 suite random stream.
// It is the source used at the table; tests inject a seeded math/rand instead.
type CryptoShuffler struct {
	stream cipher.Stream
}

// NewCryptoShuffler returns a shuffler drawing from the suite random stream.
func NewCryptoShuffler() *CryptoShuffler {
	return &CryptoShuffler{stream: suite.RandomStream()}
}

// Shuffle performs a Fisher-Yates shuffle of n elements.
func (c *CryptoShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), c.stream).Int64())
		swap(i, j)
	}
}
