package memory

import (
	"context"
	"sync"
)

type sessionKey struct {
	access string
	token  string
}

// Sessions keeps a multiset of (scope, token) per user.
type Sessions struct {
	mu     sync.Mutex
	byUser map[string]map[sessionKey]int
}

func NewSessions() *Sessions {
	return &Sessions{byUser: map[string]map[sessionKey]int{}}
}

func (r *Sessions) Add(ctx context.Context, userID, access, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.byUser[userID]
	if !ok {
		set = map[sessionKey]int{}
		r.byUser[userID] = set
	}
	set[sessionKey{access, token}]++
	return nil
}

func (r *Sessions) Contains(ctx context.Context, userID, access, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.byUser[userID][sessionKey{access, token}] > 0, nil
}

func (r *Sessions) RemoveOne(ctx context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.byUser[userID] {
		if k.token == token {
			delete(r.byUser[userID], k)
		}
	}
	return nil
}

func (r *Sessions) RemoveAll(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byUser, userID)
	return nil
}

// Count returns how many registrations userID holds.
func (r *Sessions) Count(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, c := range r.byUser[userID] {
		n += c
	}
	return n
}
