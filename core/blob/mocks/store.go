package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of blob.Store
type Store struct {
	mock.Mock
}

func (m *Store) EnsureFolder(ctx context.Context, parentID, name string) (string, error) {
	args := m.Called(ctx, parentID, name)
	return args.String(0), args.Error(1)
}

func (m *Store) Upload(ctx context.Context, folderID, filename string, data []byte, mimeType string) (string, error) {
	args := m.Called(ctx, folderID, filename, data, mimeType)
	return args.String(0), args.Error(1)
}
