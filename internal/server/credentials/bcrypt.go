package credentials

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const BcryptName = "bcrypt"

// BcryptHasher hashes with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range", cost)
	}
	return &BcryptHasher{cost: cost}, nil
}

func (h *BcryptHasher) Name() string { return BcryptName }

func (h *BcryptHasher) Hash(plaintext []byte) (string, error) {
	b, err := bcrypt.GenerateFromPassword(plaintext, h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(plaintext []byte, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(secret), plaintext) == nil
}

func (h *BcryptHasher) Recognizes(secret string) bool {
	return strings.HasPrefix(secret, "$2a$") ||
		strings.HasPrefix(secret, "$2b$") ||
		strings.HasPrefix(secret, "$2y$")
}
