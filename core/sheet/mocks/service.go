package mocks

import (
	"context"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"

	"github.com/stretchr/testify/mock"
)

// Service is a mock implementation of sheet.Service
type Service struct {
	mock.Mock
}

func (m *Service) GetRange(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error) {
	args := m.Called(ctx, spreadsheetID, a1Range)
	if matrix, ok := args.Get(0).([][]string); ok {
		return matrix, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Service) UpdateRange(ctx context.Context, spreadsheetID, a1Range string, values [][]string, mode sheet.InputMode) error {
	args := m.Called(ctx, spreadsheetID, a1Range, values, mode)
	return args.Error(0)
}

func (m *Service) BatchFormat(ctx context.Context, spreadsheetID string, ops []sheet.FormatOp) error {
	args := m.Called(ctx, spreadsheetID, ops)
	return args.Error(0)
}

func (m *Service) GetMetadata(ctx context.Context, spreadsheetID string) (*sheet.Metadata, error) {
	args := m.Called(ctx, spreadsheetID)
	if meta, ok := args.Get(0).(*sheet.Metadata); ok {
		return meta, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Service) Create(ctx context.Context, name, parentFolderID string) (string, error) {
	args := m.Called(ctx, name, parentFolderID)
	return args.String(0), args.Error(1)
}
