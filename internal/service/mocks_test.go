package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

// MockProfileStore mocks the ProfileStore interface
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) GetByUserID(ctx context.Context, userID string) (model.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *MockProfileStore) GetByUserIDs(ctx context.Context, userIDs []string) ([]model.Profile, error) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockProfileStore) Create(ctx context.Context, profile model.Profile) (model.Profile, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *MockProfileStore) Update(ctx context.Context, profile model.Profile) (model.Profile, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(model.Profile), args.Error(1)
}

// MockConferenceStore mocks the ConferenceStore interface
type MockConferenceStore struct {
	mock.Mock
}

func (m *MockConferenceStore) Create(ctx context.Context, conference model.Conference) (model.Conference, error) {
	args := m.Called(ctx, conference)
	return args.Get(0).(model.Conference), args.Error(1)
}

func (m *MockConferenceStore) GetByID(ctx context.Context, id string) (model.Conference, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Conference), args.Error(1)
}

func (m *MockConferenceStore) GetByIDs(ctx context.Context, ids []string) ([]model.Conference, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Conference), args.Error(1)
}

func (m *MockConferenceStore) GetByOrganizer(ctx context.Context, organizerUserID string) ([]model.Conference, error) {
	args := m.Called(ctx, organizerUserID)
	return args.Get(0).([]model.Conference), args.Error(1)
}

func (m *MockConferenceStore) Query(ctx context.Context, query model.ConferenceQuery) ([]model.Conference, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]model.Conference), args.Error(1)
}

func (m *MockConferenceStore) FindNearCapacity(ctx context.Context, threshold int) ([]string, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]string), args.Error(1)
}

// MockRegistrationStore mocks the RegistrationStore interface
type MockRegistrationStore struct {
	mock.Mock
}

func (m *MockRegistrationStore) Register(ctx context.Context, userID, conferenceID string) error {
	args := m.Called(ctx, userID, conferenceID)
	return args.Error(0)
}

func (m *MockRegistrationStore) Unregister(ctx context.Context, userID, conferenceID string) (bool, error) {
	args := m.Called(ctx, userID, conferenceID)
	return args.Bool(0), args.Error(1)
}

// MockCache mocks the Cache interface
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, bool) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1)
}

func (m *MockCache) Set(ctx context.Context, key, value string) {
	m.Called(ctx, key, value)
}

func (m *MockCache) Delete(ctx context.Context, key string) {
	m.Called(ctx, key)
}

// MockDispatcher mocks the NotificationDispatcher interface
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Enqueue(ctx context.Context, notification model.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockDispatcher) Close() {
	m.Called()
}
