// Package secrets stores the user's session credential in the platform keychain.
package secrets

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// ErrNotFound indicates no secret is stored for the service and user
var ErrNotFound = errors.New("secret not found")

// Store is the secret storage boundary
type Store interface {
	Set(service, user, secret string) error
	Get(service, user string) (string, error)
	Delete(service, user string) error
}

// Keyring is a Store backed by the OS keychain
type Keyring struct{}

// NewKeyring creates a keychain-backed Store
func NewKeyring() *Keyring {
	return &Keyring{}
}

// Set stores secret for service and user
func (k *Keyring) Set(service, user, secret string) error {
	if err := keyring.Set(service, user, secret); err != nil {
		return fmt.Errorf("failed to save secret: %w", err)
	}
	return nil
}

// Get returns the secret for service and user
func (k *Keyring) Get(service, user string) (string, error) {
	secret, err := keyring.Get(service, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return secret, nil
}

// Delete removes the secret for service and user. Deleting a missing secret is not an error.
func (k *Keyring) Delete(service, user string) error {
	if err := keyring.Delete(service, user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete secret: %w", err)
	}
	return nil
}
