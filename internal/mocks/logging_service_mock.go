// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func NewMockLoggingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLoggingService {
	m := &MockLoggingService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

