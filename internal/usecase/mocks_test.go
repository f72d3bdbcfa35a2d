package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockVcsQuery struct{ mock.Mock }

func (m *mockVcsQuery) CurrentHash(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *mockVcsQuery) IsClean(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
func (m *mockVcsQuery) LastTag(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *mockVcsQuery) CommitsSince(ctx context.Context, tag string) (int, error) {
	args := m.Called(ctx, tag)
	return args.Int(0), args.Error(1)
}
