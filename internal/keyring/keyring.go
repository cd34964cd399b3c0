package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/dayjournal/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is stored for the requested account
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Account names a secret stored under the application's keyring service.
type Account string

const (
	// ConnectionString holds the storage target used when neither --config nor the env var is set
	ConnectionString Account = constants.DefaultKeyringUser
	// RedisPassword is sent as AUTH when a redis:// target carries no password
	RedisPassword Account = constants.RedisKeyringUser
)

// Get retrieves the secret for account. Returns ErrNotFound if nothing is stored.
func Get(account Account) (string, error) {
	secret, err := keyring.Get(constants.AppName, string(account))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// Set stores the secret for account, replacing any previous value.
func Set(account Account, secret string) error {
	if secret == "" {
		return fmt.Errorf("%s cannot be empty", account)
	}
	if err := keyring.Set(constants.AppName, string(account), secret); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// Delete removes the secret for account.
func Delete(account Account) error {
	if err := keyring.Delete(constants.AppName, string(account)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// GetConnectionString retrieves the stored storage target.
func GetConnectionString() (string, error) {
	return Get(ConnectionString)
}

// SetConnectionString stores the storage target.
func SetConnectionString(connStr string) error {
	return Set(ConnectionString, connStr)
}

// DeleteConnectionString removes the stored storage target.
func DeleteConnectionString() error {
	return Delete(ConnectionString)
}

// IsAvailable is a best-effort probe: a read that fails with anything other than
// not-found means the OS keyring cannot be used.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
