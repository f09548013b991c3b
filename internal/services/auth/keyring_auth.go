package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(key string, token string) error {
	entry := NormalizeEntry(key)
	return keyring.Set(k.serviceName, entry, token)
}

func (k *KeyringStore) GetToken(key string) (string, error) {
	entry := NormalizeEntry(key)
	token, err := keyring.Get(k.serviceName, entry)
	if err == nil {
		return token, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrTokenNotFound
	}
	return "", err
}

func (k *KeyringStore) DeleteToken(key string) error {
	entry := NormalizeEntry(key)
	err := keyring.Delete(k.serviceName, entry)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
