package credentials

import (
	"context"
	"runtime"
	"sync"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"golang.org/x/sync/semaphore"
)

// dummyPlaintext feeds the secret used by VerifyAbsent.
const dummyPlaintext = "todokeeper-absent-user"

// Manager hashes new passwords with its primary hasher and verifies stored
// secrets with whichever known hasher recognizes them. At most concurrency
// operations run at the same time; callers wait on a semaphore.
type Manager struct {
	primary Hasher
	hashers []Hasher
	sem     *semaphore.Weighted

	dummyOnce   sync.Once
	dummySecret string
}

// NewManager returns a Manager that hashes with primary. Secrets produced by
// any of fallback are still verifiable. concurrency <= 0 means NumCPU.
func NewManager(primary Hasher, concurrency int, fallback ...Hasher) *Manager {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	hashers := append([]Hasher{primary}, fallback...)
	return &Manager{
		primary: primary,
		hashers: hashers,
		sem:     semaphore.NewWeighted(int64(concurrency)),
	}
}

// Hash returns a fresh salted secret for plaintext. Empty plaintext or
// plaintext longer than MaxPasswordBytes yields common.ErrorInvalidInput.
func (m *Manager) Hash(ctx context.Context, plaintext string) (string, error) {
	if len(plaintext) == 0 || len(plaintext) > MaxPasswordBytes {
		return "", common.ErrorInvalidInput
	}

	if err := m.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer m.sem.Release(1)

	pw := []byte(plaintext)
	defer common.WipeByteArray(pw)

	return m.primary.Hash(pw)
}

// Verify reports whether plaintext matches secret. Any problem, including an
// unrecognized secret or a cancelled ctx, is reported as a mismatch.
func (m *Manager) Verify(ctx context.Context, plaintext, secret string) bool {
	if len(plaintext) == 0 || len(plaintext) > MaxPasswordBytes || secret == "" {
		return false
	}

	h := m.hasherFor(secret)
	if h == nil {
		return false
	}

	if err := m.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer m.sem.Release(1)

	pw := []byte(plaintext)
	defer common.WipeByteArray(pw)

	return h.Verify(pw, secret)
}

// VerifyAbsent spends the same effort as a real Verify against a secret that
// matches nothing. Login calls it when no user has the given email.
func (m *Manager) VerifyAbsent(ctx context.Context, plaintext string) {
	m.dummyOnce.Do(func() {
		s, err := m.primary.Hash([]byte(dummyPlaintext))
		if err == nil {
			m.dummySecret = s
		}
	})
	if len(plaintext) == 0 || len(plaintext) > MaxPasswordBytes {
		plaintext = dummyPlaintext
	}
	_ = m.Verify(ctx, plaintext, m.dummySecret)
}

// Algorithm names the hasher used for new secrets.
func (m *Manager) Algorithm() string {
	return m.primary.Name()
}

func (m *Manager) hasherFor(secret string) Hasher {
	for _, h := range m.hashers {
		if h.Recognizes(secret) {
			return h
		}
	}
	return nil
}

// New builds a Manager hashing with algo. The other supported algorithm is
// registered as a fallback with the same work factors, so secrets written
// before a configuration switch still verify.
func New(algo string, bcryptCost int, argon2Time, argon2MemoryKiB uint32, concurrency int) (*Manager, error) {
	primary, err := NewHasher(algo, bcryptCost, argon2Time, argon2MemoryKiB)
	if err != nil {
		return nil, err
	}

	otherName := Argon2idName
	if primary.Name() == Argon2idName {
		otherName = BcryptName
	}
	other, err := NewHasher(otherName, bcryptCost, argon2Time, argon2MemoryKiB)
	if err != nil {
		return nil, err
	}

	return NewManager(primary, concurrency, other), nil
}
