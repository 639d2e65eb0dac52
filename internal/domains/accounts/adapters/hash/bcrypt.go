// Package hash provides the bcrypt credential hashing adapter.
package hash

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ordertrack/order-tracking-api/internal/domains/accounts/ports"
)

var _ ports.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt hashes credentials with the bcrypt KDF.
type Bcrypt struct {
	cost int
}

// NewBcrypt builds a hasher with the given cost; zero or negative selects the
// library default.
func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), b.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (b *Bcrypt) Compare(hash, raw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
}
