// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/backstage/internal/models"
	"github.com/desertthunder/backstage/internal/shared"
)

// MemStore is an in-memory cache double backed by a plain map. Not safe for
// concurrent use beyond what the tests exercise.
type MemStore struct {
	Data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{Data: make(map[string][]byte)}
}

func (m *MemStore) Get(key string) ([]byte, error) {
	value, ok := m.Data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrCacheMiss, key)
	}
	return value, nil
}

func (m *MemStore) Set(key string, value []byte) error {
	m.Data[key] = value
	return nil
}

func (m *MemStore) GetByPrefix(prefix string) ([][]byte, error) {
	var values [][]byte
	for key, value := range m.Data {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			values = append(values, value)
		}
	}
	return values, nil
}

// FailingStore is a cache double whose every operation errors.
type FailingStore struct{}

func (f *FailingStore) Get(string) ([]byte, error)           { return nil, errors.New("cache down") }
func (f *FailingStore) Set(string, []byte) error             { return errors.New("cache down") }
func (f *FailingStore) GetByPrefix(string) ([][]byte, error) { return nil, errors.New("cache down") }

// MockStore is a configurable authoritative store double.
type MockStore struct {
	Rows      map[string]*models.ProfilePatch
	FindErr   error
	SaveErr   error
	SaveCalls []string
}

func (m *MockStore) FindByEmail(_ context.Context, email string) (*models.ProfilePatch, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.Rows[email], nil
}

func (m *MockStore) SaveFields(_ context.Context, email string, _ models.ProfilePatch) error {
	m.SaveCalls = append(m.SaveCalls, email)
	return m.SaveErr
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
