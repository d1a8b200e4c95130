package mocks

import (
	"context"

	"questshare/internal/model"
	"questshare/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) Create(ctx context.Context, mat *model.Material) (*model.Material, error) {
	args := m.Called(ctx, mat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockMaterialRepository) FindByID(ctx context.Context, id string) (*model.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockMaterialRepository) List(ctx context.Context, q repository.ListQuery) ([]model.Material, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Material), args.Error(1)
}

func (m *MockMaterialRepository) UpdateStatus(ctx context.Context, id string, status model.MaterialStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockMaterialRepository) CountByStatus(ctx context.Context) (*repository.CountsByStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CountsByStatus), args.Error(1)
}
