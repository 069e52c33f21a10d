package credentials

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testArgon2Params() Argon2idParams {
	return Argon2idParams{Iterations: 1, MemoryKiB: 8 * 1024, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func newBcryptManager(t *testing.T) *Manager {
	t.Helper()
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	a, err := NewArgon2idHasher(testArgon2Params())
	require.NoError(t, err)
	return NewManager(h, 4, a)
}

func newArgonManager(t *testing.T) *Manager {
	t.Helper()
	a, err := NewArgon2idHasher(testArgon2Params())
	require.NoError(t, err)
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return NewManager(a, 4, h)
}

func TestManager_HashVerify(t *testing.T) {
	ctx := context.Background()

	for name, m := range map[string]*Manager{
		"bcrypt":   newBcryptManager(t),
		"argon2id": newArgonManager(t),
	} {
		t.Run(name, func(t *testing.T) {
			secret, err := m.Hash(ctx, "correct horse")
			require.NoError(t, err)
			assert.NotContains(t, secret, "correct horse")

			assert.True(t, m.Verify(ctx, "correct horse", secret))
			assert.False(t, m.Verify(ctx, "correct hors", secret))
			assert.False(t, m.Verify(ctx, "", secret))
		})
	}
}

func TestManager_HashIsSalted(t *testing.T) {
	ctx := context.Background()
	m := newBcryptManager(t)

	a, err := m.Hash(ctx, "same-password")
	require.NoError(t, err)
	b, err := m.Hash(ctx, "same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, m.Verify(ctx, "same-password", a))
	assert.True(t, m.Verify(ctx, "same-password", b))
}

func TestManager_HashRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	m := newBcryptManager(t)

	_, err := m.Hash(ctx, "")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = m.Hash(ctx, strings.Repeat("x", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	s, err := m.Hash(ctx, strings.Repeat("x", MaxPasswordBytes))
	require.NoError(t, err)
	assert.True(t, m.Verify(ctx, strings.Repeat("x", MaxPasswordBytes), s))
}

func TestManager_VerifyAcrossAlgorithms(t *testing.T) {
	ctx := context.Background()
	bm := newBcryptManager(t)
	am := newArgonManager(t)

	bs, err := bm.Hash(ctx, "pw-123456")
	require.NoError(t, err)
	as, err := am.Hash(ctx, "pw-123456")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(bs, "$2"))
	assert.True(t, strings.HasPrefix(as, "$argon2id$v=19$"))

	assert.True(t, am.Verify(ctx, "pw-123456", bs), "argon2id manager verifies bcrypt secret")
	assert.True(t, bm.Verify(ctx, "pw-123456", as), "bcrypt manager verifies argon2id secret")
}

func TestManager_VerifyMalformedSecret(t *testing.T) {
	ctx := context.Background()
	m := newBcryptManager(t)

	for _, s := range []string{
		"",
		"plain",
		"$2a$garbage",
		"$argon2id$v=19$m=abc$x$y",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5a2V5a2V5a2V5",
		"$argon2id$v=19$m=99999999,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5a2V5a2V5a2V5a2V5a2V5",
	} {
		assert.False(t, m.Verify(ctx, "whatever", s), s)
	}
}

func TestManager_CancelledContext(t *testing.T) {
	m := newBcryptManager(t)
	secret, err := m.Hash(context.Background(), "password")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// fill the semaphore so Acquire must observe ctx
	require.NoError(t, m.sem.Acquire(context.Background(), 4))
	defer m.sem.Release(4)

	_, err = m.Hash(ctx, "password")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, m.Verify(ctx, "password", secret))
}

type countingHasher struct {
	Hasher
	cur, peak atomic.Int32
}

func (c *countingHasher) Hash(p []byte) (string, error) {
	n := c.cur.Add(1)
	for {
		old := c.peak.Load()
		if n <= old || c.peak.CompareAndSwap(old, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	defer c.cur.Add(-1)
	return c.Hasher.Hash(p)
}

func TestManager_BoundsConcurrency(t *testing.T) {
	inner, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	ch := &countingHasher{Hasher: inner}
	m := NewManager(ch, 2)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Hash(context.Background(), "password")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, ch.peak.Load(), int32(2))
}

func TestManager_VerifyAbsent(t *testing.T) {
	m := newBcryptManager(t)
	assert.NotPanics(t, func() {
		m.VerifyAbsent(context.Background(), "anything")
		m.VerifyAbsent(context.Background(), "")
	})
	assert.NotEmpty(t, m.dummySecret)
}

func TestNew(t *testing.T) {
	m, err := New("bcrypt", bcrypt.MinCost, 1, 8*1024, 2)
	require.NoError(t, err)
	assert.Equal(t, BcryptName, m.Algorithm())
	assert.Len(t, m.hashers, 2)

	m, err = New("argon2id", bcrypt.MinCost, 1, 8*1024, 2)
	require.NoError(t, err)
	assert.Equal(t, Argon2idName, m.Algorithm())

	_, err = New("md5", bcrypt.MinCost, 1, 8*1024, 2)
	assert.Error(t, err)

	_, err = New("bcrypt", 99, 1, 8*1024, 2)
	assert.Error(t, err)
}
