package mocks

import (
	"context"
	"io"

	"questshare/internal/model"
	"questshare/internal/repository"
	"questshare/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockMaterialService struct {
	mock.Mock
}

func (m *MockMaterialService) Upload(ctx context.Context, uploader *model.Account, in service.UploadInput, r io.Reader) (*model.Material, error) {
	args := m.Called(ctx, uploader, in, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockMaterialService) ListApproved(ctx context.Context, mtype model.MaterialType, f service.MaterialFilter) ([]model.Material, error) {
	args := m.Called(ctx, mtype, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Material), args.Error(1)
}

func (m *MockMaterialService) ListRecent(ctx context.Context, limit int) ([]model.Material, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Material), args.Error(1)
}

func (m *MockMaterialService) ListMine(ctx context.Context, uploader *model.Account) ([]model.Material, error) {
	args := m.Called(ctx, uploader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Material), args.Error(1)
}

type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) ListPending(ctx context.Context, actor *model.Account) ([]model.Material, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Material), args.Error(1)
}

func (m *MockModerationService) Decide(ctx context.Context, actor *model.Account, id string, status model.MaterialStatus) (*model.Material, error) {
	args := m.Called(ctx, actor, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockModerationService) Stats(ctx context.Context, actor *model.Account) (*repository.CountsByStatus, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CountsByStatus), args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, identity string, in service.RegisterInput) (*model.Account, error) {
	args := m.Called(ctx, identity, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountService) Resolve(ctx context.Context, identity string) (*model.Account, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

type MockStudyGuideService struct {
	mock.Mock
}

func (m *MockStudyGuideService) Generate(ctx context.Context, topic string) (*model.StudyGuide, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudyGuide), args.Error(1)
}

