package auth

import (
	"errors"

	"simplyctl/internal/util"
)

const ServiceName = "simplyctl"

var ErrTokenNotFound = errors.New("auth token not found")

// Store holds named credential entries (account number, API key) in a backend.
type Store interface {
	SetToken(key string, token string) error
	GetToken(key string) (string, error)
	DeleteToken(key string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeEntry normalizes a credential entry name for consistent lookup.
func NormalizeEntry(key string) string {
	return util.NormalizeKey(key)
}
