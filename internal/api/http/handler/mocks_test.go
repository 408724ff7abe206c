package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, identity model.UserIdentity) (model.Profile, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *MockProfileService) Save(ctx context.Context, identity model.UserIdentity, params model.SaveProfileParams) (model.Profile, error) {
	args := m.Called(ctx, identity, params)
	return args.Get(0).(model.Profile), args.Error(1)
}

type MockConferenceService struct {
	mock.Mock
}

func (m *MockConferenceService) Create(ctx context.Context, identity model.UserIdentity, params model.CreateConferenceParams) (model.Conference, error) {
	args := m.Called(ctx, identity, params)
	return args.Get(0).(model.Conference), args.Error(1)
}

func (m *MockConferenceService) Query(ctx context.Context, filters []model.Filter) ([]model.Conference, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Conference), args.Error(1)
}

func (m *MockConferenceService) Created(ctx context.Context, identity model.UserIdentity) ([]model.Conference, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Conference), args.Error(1)
}

func (m *MockConferenceService) ToAttend(ctx context.Context, identity model.UserIdentity) ([]model.Conference, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Conference), args.Error(1)
}

type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Register(ctx context.Context, identity model.UserIdentity, conferenceID string) (bool, error) {
	args := m.Called(ctx, identity, conferenceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRegistrationService) Unregister(ctx context.Context, identity model.UserIdentity, conferenceID string) (bool, error) {
	args := m.Called(ctx, identity, conferenceID)
	return args.Bool(0), args.Error(1)
}

type MockAnnouncementService struct {
	mock.Mock
}

func (m *MockAnnouncementService) Get(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
