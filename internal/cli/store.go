package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/keyring"
	"github.com/julianstephens/dayjournal/internal/logger"
	"github.com/julianstephens/dayjournal/internal/storage"
	"github.com/julianstephens/dayjournal/internal/storage/memory"
	"github.com/julianstephens/dayjournal/internal/storage/postgres"
	"github.com/julianstephens/dayjournal/internal/storage/redis"
	"github.com/julianstephens/dayjournal/internal/storage/sqlite"
)

// Target kinds selected by the storage target string.
const (
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
	KindRedis    = "redis"
	KindMemory   = "memory"
)

// TargetKind classifies a --config value.
func TargetKind(target string) string {
	switch {
	case strings.HasPrefix(target, "postgres://"), strings.HasPrefix(target, "postgresql://"):
		return KindPostgres
	case strings.Contains(target, "host=") || strings.Contains(target, "dbname="):
		// key=value DSN
		return KindPostgres
	case strings.HasPrefix(target, "redis://"), strings.HasPrefix(target, "rediss://"):
		return KindRedis
	case target == constants.MemoryTarget:
		return KindMemory
	default:
		return KindSQLite
	}
}

// ResolveTarget picks the storage target: the flag, then the environment, then the
// keyring, then the default sqlite path. source names where the value came from.
func ResolveTarget(flag string) (target, source string) {
	if flag != "" {
		return ExpandHome(flag), "flag"
	}
	if env := os.Getenv(constants.EnvDBConnection); env != "" {
		return ExpandHome(env), "environment"
	}
	if stored, err := keyring.GetConnectionString(); err == nil {
		return ExpandHome(stored), "keyring"
	} else if !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Keyring lookup failed", "error", err)
	}
	return ExpandHome(constants.DefaultConfigPath), "default"
}

// ExpandHome replaces a leading ~/ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// NewStore builds the provider for target without opening it.
func NewStore(target string) (storage.Provider, error) {
	switch TargetKind(target) {
	case KindPostgres:
		if err := postgres.ValidateConnString(target); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: keep the password in ~/.pgpass or PGPASSWORD", err)
			}
			return nil, err
		}
		return postgres.New(target), nil
	case KindRedis:
		if err := redis.ValidateURL(target); err != nil {
			if errors.Is(err, redis.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: store it with '%s keyring set --redis-password'", err, constants.AppName)
			}
			return nil, err
		}
		password, err := keyring.Get(keyring.RedisPassword)
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("Redis password lookup failed", "error", err)
		}
		return redis.New(target, password), nil
	case KindMemory:
		return memory.New(), nil
	default:
		return sqlite.NewStore(target), nil
	}
}

// ConfigDir returns the directory that holds logs, .env and backups for target.
// Network targets fall back to the directory of the default sqlite path.
func ConfigDir(target string) string {
	if TargetKind(target) == KindSQLite {
		return filepath.Dir(target)
	}
	return filepath.Dir(ExpandHome(constants.DefaultConfigPath))
}

// KindOf names the backend behind an opened provider.
func KindOf(p storage.Provider) string {
	switch p.(type) {
	case *postgres.Store:
		return KindPostgres
	case *redis.Store:
		return KindRedis
	case *memory.Store:
		return KindMemory
	default:
		return KindSQLite
	}
}
