// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockCartRepositoryInterface struct {
	mock.Mock
}

func (m *MockCartRepositoryInterface) Load(ctx context.Context, sessionID string) (*model.CartState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartState), args.Error(1)
}

func (m *MockCartRepositoryInterface) Save(ctx context.Context, sessionID string, state model.CartState) error {
	args := m.Called(ctx, sessionID, state)
	return args.Error(0)
}

func (m *MockCartRepositoryInterface) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// NewMockCartRepositoryInterface creates a new instance of MockCartRepositoryInterface.
// It registers a testing interface on the mock and a cleanup function to assert the mock's expectations.
func NewMockCartRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartRepositoryInterface {
	m := &MockCartRepositoryInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
