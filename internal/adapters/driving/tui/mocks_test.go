package tui

import (
	"context"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// MockParseService implements driving.ParseService for testing.
type MockParseService struct {
	ParseFunc func(ctx context.Context, source string) (*domain.Result, error)
}

func (m *MockParseService) Parse(ctx context.Context, source string) (*domain.Result, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(ctx, source)
	}
	return &domain.Result{}, nil
}

func (m *MockParseService) ParseBytes(_ context.Context, _ string, _ []byte) (*domain.Result, error) {
	return &domain.Result{}, nil
}

func (m *MockParseService) Get(_ context.Context, _ string) (*domain.Result, error) {
	return nil, domain.ErrNotFound
}

func (m *MockParseService) List(_ context.Context) ([]domain.SourceInfo, error) {
	return nil, nil
}
