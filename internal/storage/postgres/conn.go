package postgres

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	pq "github.com/lib/pq"
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

// connInfo is a connection string in either URL or key=value DSN form.
type connInfo struct {
	u      *url.URL
	fields []string
}

func parseConn(raw string) (connInfo, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return connInfo{}, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}
	if strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://") {
		u, err := url.Parse(raw)
		if err != nil {
			return connInfo{}, fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
		}
		return connInfo{u: u}, nil
	}
	return connInfo{fields: strings.Fields(raw)}, nil
}

// param looks name up case-insensitively in the URL query or the DSN keys.
func (c connInfo) param(name string) (string, bool) {
	if c.u != nil {
		for key, values := range c.u.Query() {
			if strings.EqualFold(key, name) && len(values) > 0 {
				return values[0], true
			}
		}
		return "", false
	}
	for _, field := range c.fields {
		if key, value, ok := strings.Cut(field, "="); ok && strings.EqualFold(key, name) {
			return value, true
		}
	}
	return "", false
}

func (c connInfo) hasPassword() bool {
	if c.u != nil {
		_, set := c.u.User.Password()
		return set
	}
	_, set := c.param("password")
	return set
}

// withParam returns the connection string with name=value added.
func (c connInfo) withParam(name, value string) string {
	if c.u != nil {
		u := *c.u
		q := u.Query()
		q.Set(name, value)
		u.RawQuery = q.Encode()
		return u.String()
	}
	return strings.Join(append(c.fields[:len(c.fields):len(c.fields)], name+"="+value), " ")
}

// ValidateConnString accepts a PostgreSQL URL or DSN that carries no password.
// Passwords belong in ~/.pgpass or PGPASSWORD.
func ValidateConnString(connStr string) error {
	c, err := parseConn(connStr)
	if err != nil {
		return err
	}
	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}
	if c.hasPassword() {
		return ErrEmbeddedCredentials
	}
	if c.u != nil && c.u.Host == "" && c.u.User == nil && strings.Trim(c.u.Path, "/") == "" {
		return fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
	}
	return nil
}
