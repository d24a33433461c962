// Package credential issues the one-time passwords handed out when doctors
// and patients are created.
//
// A credential is 16 characters drawn uniformly from [A-Za-z0-9], after which
// the specials ! $ = @ ? . are inserted one at a time, each at a uniformly
// random index of the string built so far (0 through its current length,
// inclusive). Later specials are therefore more likely to sit near earlier
// ones than a uniform shuffle would place them.
package credential

import (
	"crypto/rand"
	"fmt"
	"io"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

const (
	alphabet     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	specials     = "!$=@?."
	randomLength = 16

	// Length is the size of every generated credential.
	Length = randomLength + len(specials)
)

// Specials returns the fixed set of special characters every credential contains.
func Specials() string { return specials }

// Generate builds a credential from the randomness in r.
func Generate(r io.Reader) (string, error) {
	buf := make([]byte, 0, Length)
	for range randomLength {
		n, err := uniform(r, len(alphabet))
		if err != nil {
			return "", fmt.Errorf("generate credential: %w", err)
		}
		buf = append(buf, alphabet[n])
	}
	for i := range len(specials) {
		pos, err := uniform(r, len(buf)+1)
		if err != nil {
			return "", fmt.Errorf("generate credential: %w", err)
		}
		buf = slices.Insert(buf, pos, specials[i])
	}
	return string(buf), nil
}

// uniform returns an integer in [0, n) for n <= 256, rejecting bytes from the
// biased tail so every outcome is equally likely.
func uniform(r io.Reader, n int) (int, error) {
	limit := 256 - 256%n
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		if int(b[0]) < limit {
			return int(b[0]) % n, nil
		}
	}
}

// Issuer generates credentials and their bcrypt hashes.
type Issuer struct {
	cost int
	rand io.Reader
}

// NewIssuer returns an Issuer hashing at the given bcrypt cost. Out-of-range
// costs fall back to bcrypt.DefaultCost.
func NewIssuer(cost int) *Issuer {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Issuer{cost: cost, rand: rand.Reader}
}

// Issue returns a fresh plaintext credential and its hash. Only the hash may
// be persisted.
func (i *Issuer) Issue() (plaintext, hash string, err error) {
	plaintext, err = Generate(i.rand)
	if err != nil {
		return "", "", err
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), i.cost)
	if err != nil {
		return "", "", fmt.Errorf("hash credential: %w", err)
	}
	return plaintext, string(h), nil
}

// Verify reports whether plaintext matches the stored hash.
func Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
