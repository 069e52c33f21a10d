package credentials

import (
	"errors"
	"fmt"
)

// MaxPasswordBytes is the longest plaintext accepted by Hash. It is bcrypt's
// input limit and applies to every algorithm.
const MaxPasswordBytes = 72

// ErrInvalidHash is returned when a stored secret cannot be parsed.
var ErrInvalidHash = errors.New("invalid password hash")

// Hasher is a single password hashing algorithm.
type Hasher interface {
	// Name identifies the algorithm ("bcrypt", "argon2id").
	Name() string
	// Hash returns a salted one-way secret for plaintext.
	Hash(plaintext []byte) (string, error)
	// Verify reports whether plaintext matches secret.
	Verify(plaintext []byte, secret string) bool
	// Recognizes reports whether secret was produced by this algorithm.
	Recognizes(secret string) bool
}

// NewHasher builds the hasher named by algo with the given work factors.
func NewHasher(algo string, bcryptCost int, argon2Time, argon2MemoryKiB uint32) (Hasher, error) {
	switch algo {
	case "", BcryptName:
		return NewBcryptHasher(bcryptCost)
	case Argon2idName:
		return NewArgon2idHasher(Argon2idParams{
			Iterations:  argon2Time,
			MemoryKiB:   argon2MemoryKiB,
			Parallelism: DefaultArgon2idParams.Parallelism,
			SaltLength:  DefaultArgon2idParams.SaltLength,
			KeyLength:   DefaultArgon2idParams.KeyLength,
		})
	default:
		return nil, fmt.Errorf("unknown password hasher %q", algo)
	}
}
