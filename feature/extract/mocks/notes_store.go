package mocks

import (
	"context"

	"github.com/ZBlocker655/10k-sentences-pipeline/feature/extract"

	"github.com/stretchr/testify/mock"
)

type NotesStore struct {
	mock.Mock
}

func (m *NotesStore) FindNotes(ctx context.Context, deck string) ([]int64, error) {
	args := m.Called(ctx, deck)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *NotesStore) FetchNotes(ctx context.Context, ids []int64) ([]extract.Note, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]extract.Note), args.Error(1)
}
