package credentials

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const Argon2idName = "argon2id"

// Argon2idParams are the tunable argon2id work factors.
type Argon2idParams struct {
	Iterations  uint32
	MemoryKiB   uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

var DefaultArgon2idParams = Argon2idParams{
	Iterations:  1,
	MemoryKiB:   64 * 1024,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// upper limits for parameters read back from stored hashes
const (
	maxArgon2MemoryKiB  = 1024 * 1024
	maxArgon2Iterations = 64
)

// Argon2idHasher produces PHC strings:
//
//	$argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt_b64>$<hash_b64>
type Argon2idHasher struct {
	params Argon2idParams
}

func NewArgon2idHasher(p Argon2idParams) (*Argon2idHasher, error) {
	if p.Iterations == 0 || p.MemoryKiB == 0 || p.Parallelism == 0 {
		return nil, fmt.Errorf("argon2id: zero work factor (t=%d m=%d p=%d)", p.Iterations, p.MemoryKiB, p.Parallelism)
	}
	if p.SaltLength < 8 || p.KeyLength < 16 {
		return nil, fmt.Errorf("argon2id: salt or key too short")
	}
	return &Argon2idHasher{params: p}, nil
}

func (h *Argon2idHasher) Name() string { return Argon2idName }

func (h *Argon2idHasher) Hash(plaintext []byte) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}

	key := argon2.IDKey(plaintext, salt, h.params.Iterations, h.params.MemoryKiB, h.params.Parallelism, h.params.KeyLength)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryKiB,
		h.params.Iterations,
		h.params.Parallelism,
		b64.EncodeToString(salt),
		b64.EncodeToString(key),
	), nil
}

func (h *Argon2idHasher) Verify(plaintext []byte, secret string) bool {
	p, salt, expected, err := decodeArgon2id(secret)
	if err != nil {
		return false
	}

	key := argon2.IDKey(plaintext, salt, p.Iterations, p.MemoryKiB, p.Parallelism, uint32(len(expected)))
	return subtle.ConstantTimeCompare(key, expected) == 1
}

func (h *Argon2idHasher) Recognizes(secret string) bool {
	return strings.HasPrefix(secret, "$argon2id$")
}

func decodeArgon2id(encoded string) (Argon2idParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != Argon2idName {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}

	var mem, it, par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &it, &par); err != nil {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}
	if mem == 0 || it == 0 || par == 0 || par > 255 || mem > maxArgon2MemoryKiB || it > maxArgon2Iterations {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) < 8 {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil || len(key) < 16 || len(key) > 128 {
		return Argon2idParams{}, nil, nil, ErrInvalidHash
	}

	return Argon2idParams{
		Iterations:  it,
		MemoryKiB:   mem,
		Parallelism: uint8(par),
		SaltLength:  uint32(len(salt)),
		KeyLength:   uint32(len(key)),
	}, salt, key, nil
}
