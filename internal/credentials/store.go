// Package credentials provides API-key credential sourcing for the server.
//
// A Store abstracts where secrets live; EnvStore reads them from the process
// environment. Credentials are resolved once at startup and passed down, so
// no process-wide implicit state is consulted after boot.
package credentials

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotSet indicates that a credential is not present in the store.
var ErrNotSet = errors.New("credential not set")

// Store provides named secrets.
type Store interface {
	// Get returns the secret stored under name, or an error wrapping
	// ErrNotSet when it is absent.
	Get(name string) (string, error)
}

// EnvStore is a Store backed by the process environment.
type EnvStore struct{}

// NewEnvStore creates a new environment-backed store.
func NewEnvStore() EnvStore {
	return EnvStore{}
}

// Get returns the environment variable named name.
func (EnvStore) Get(name string) (string, error) {
	val, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrNotSet)
	}
	return val, nil
}

// APIKey is a single named API-key credential bound to a store.
type APIKey struct {
	name  string
	store Store
}

// NewAPIKey creates a credential that resolves name against store.
func NewAPIKey(name string, store Store) *APIKey {
	return &APIKey{
		name:  name,
		store: store,
	}
}

// Name returns the credential's name (the store lookup key).
func (k *APIKey) Name() string {
	return k.name
}

// Resolve reads the key from the store. An absent key yields an error
// wrapping ErrNotSet; callers decide whether that is fatal.
func (k *APIKey) Resolve() (string, error) {
	return k.store.Get(k.name)
}
