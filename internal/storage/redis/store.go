// Package redis keeps journal records in a Redis database under a fixed key namespace.
package redis

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/storage"
)

var (
	ErrInvalidURL          = errors.New("invalid Redis URL")
	ErrEmbeddedCredentials = errors.New("redis URL must not contain a password")
)

type Store struct {
	url      string
	password string
	client   *redis.Client
}

// New returns a store for a redis:// or rediss:// URL. password is sent as AUTH when non-empty.
func New(rawURL, password string) *Store {
	return &Store{url: rawURL, password: password}
}

// ValidateURL rejects malformed URLs and URLs carrying a password.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if _, isSet := u.User.Password(); isSet {
		return ErrEmbeddedCredentials
	}
	if _, err := redis.ParseURL(rawURL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	return nil
}

func (s *Store) connect(ctx context.Context) error {
	if s.client != nil {
		return nil
	}
	if err := ValidateURL(s.url); err != nil {
		return err
	}

	opts, err := redis.ParseURL(s.url)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if s.password != "" {
		opts.Password = s.password
	}
	opts.DialTimeout = constants.RedisDialTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	s.client = client
	return nil
}

func (s *Store) Init() error {
	return s.connect(context.Background())
}

func (s *Store) Load() error {
	return s.connect(context.Background())
}

func (s *Store) Close() error {
	if s.client != nil {
		err := s.client.Close()
		s.client = nil
		return err
	}
	return nil
}

func namespaced(key string) string {
	return constants.RedisKeyNamespace + key
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, namespaced(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, namespaced(key), value, 0).Err()
}

// Remove deletes the key. DEL on a missing key already reports zero removed, not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, namespaced(key)).Err()
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, constants.RedisKeyNamespace+"*", constants.RedisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), constants.RedisKeyNamespace))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// GetConfigPath returns a non-sensitive identifier instead of the URL.
func (s *Store) GetConfigPath() string {
	return "redis"
}
