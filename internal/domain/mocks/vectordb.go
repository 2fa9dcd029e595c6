// Package mocks provides mock implementations of the domain ports for tests.
package mocks

import "context"

// VectorAdmin is a mock implementation of ports.VectorAdmin.
type VectorAdmin struct {
	Names  []string
	Counts map[string]uint64

	ListErr error

	// Per-collection errors (fine-grained control over batch behavior)
	CountErrs  map[string]error
	ClearErrs  map[string]error
	DeleteErrs map[string]error

	// Call tracking
	CountCalls  []string
	ClearCalls  []string
	DeleteCalls []string
	CloseCalled bool
}

// ListCollections returns the configured names.
func (m *VectorAdmin) ListCollections(ctx context.Context) ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Names, nil
}

// CollectionPointCount returns the configured count for the collection.
func (m *VectorAdmin) CollectionPointCount(ctx context.Context, name string) (uint64, error) {
	m.CountCalls = append(m.CountCalls, name)
	if err := m.CountErrs[name]; err != nil {
		return 0, err
	}
	return m.Counts[name], nil
}

// ClearCollection records the call and returns the configured error.
func (m *VectorAdmin) ClearCollection(ctx context.Context, name string) error {
	m.ClearCalls = append(m.ClearCalls, name)
	return m.ClearErrs[name]
}

// DeleteCollection records the call and returns the configured error.
func (m *VectorAdmin) DeleteCollection(ctx context.Context, name string) error {
	m.DeleteCalls = append(m.DeleteCalls, name)
	return m.DeleteErrs[name]
}

// Close records that the connection was closed.
func (m *VectorAdmin) Close() error {
	m.CloseCalled = true
	return nil
}
