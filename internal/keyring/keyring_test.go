package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	want := "postgres://journal@localhost:5432/journal?sslmode=disable"
	if err := SetConnectionString(want); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if got != want {
		t.Errorf("GetConnectionString() = %q, want %q", got, want)
	}
}

func TestAccountsAreIndependent(t *testing.T) {
	gokeyring.MockInit()

	if err := Set(ConnectionString, "redis://localhost:6379/0"); err != nil {
		t.Fatalf("Set(ConnectionString) failed: %v", err)
	}
	if err := Set(RedisPassword, "s3cret"); err != nil {
		t.Fatalf("Set(RedisPassword) failed: %v", err)
	}
	if err := Delete(RedisPassword); err != nil {
		t.Fatalf("Delete(RedisPassword) failed: %v", err)
	}

	if _, err := Get(RedisPassword); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(RedisPassword) error = %v, want %v", err, ErrNotFound)
	}
	got, err := Get(ConnectionString)
	if err != nil {
		t.Fatalf("Get(ConnectionString) failed: %v", err)
	}
	if got != "redis://localhost:6379/0" {
		t.Errorf("Get(ConnectionString) = %q", got)
	}
}

func TestSetEmptySecret(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString(""); err == nil {
		t.Error("SetConnectionString(\"\") should return an error")
	}
}

func TestGetNotFound(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteConnectionString()

	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteNotFound(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteConnectionString()

	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestIsAvailableWithMock(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false with mock keyring, want true")
	}
}
