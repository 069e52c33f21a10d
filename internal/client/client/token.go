package client

import (
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/filex"
)

// TokenStore persists the session token between CLI runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single owner-only file.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load returns "" when no token was saved.
func (s *FileTokenStore) Load() (string, error) {
	data, err := filex.ReadOptional(s.path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	return filex.WritePrivate(s.path, []byte(token))
}

func (s *FileTokenStore) Clear() error {
	return filex.RemoveOptional(s.path)
}

// memoryTokenStore is used when no file is configured.
type memoryTokenStore struct {
	token string
}

func (s *memoryTokenStore) Load() (string, error) { return s.token, nil }
func (s *memoryTokenStore) Save(token string) error {
	s.token = token
	return nil
}
func (s *memoryTokenStore) Clear() error {
	s.token = ""
	return nil
}
