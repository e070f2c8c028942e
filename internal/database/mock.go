package database

import (
	"github.com/stretchr/testify/mock"

	"github.com/agora-forum/agora/internal/models"
)

type MockStore struct {
	mock.Mock
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStore) GetUser(id string) (*models.User, error) {
	args := m.Called(id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStore) GetUserRooms(userID string) ([]models.Room, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *MockStore) GetUserMessages(userID string) ([]models.Message, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockStore) GetOrCreateTopic(name string) (*models.Topic, bool, error) {
	args := m.Called(name)
	if topic, ok := args.Get(0).(*models.Topic); ok {
		return topic, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *MockStore) SearchTopics(q string) ([]models.Topic, error) {
	args := m.Called(q)
	return args.Get(0).([]models.Topic), args.Error(1)
}

func (m *MockStore) RecentTopics(limit int) ([]models.Topic, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Topic), args.Error(1)
}

func (m *MockStore) CreateRoom(room *models.Room) error {
	args := m.Called(room)
	return args.Error(0)
}

func (m *MockStore) GetRoom(id string) (*models.Room, error) {
	args := m.Called(id)
	if room, ok := args.Get(0).(*models.Room); ok {
		return room, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) SearchRooms(q string) ([]models.Room, error) {
	args := m.Called(q)
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *MockStore) UpdateRoom(room *models.Room) error {
	args := m.Called(room)
	return args.Error(0)
}

func (m *MockStore) DeleteRoom(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) AddParticipant(roomID, userID string) error {
	args := m.Called(roomID, userID)
	return args.Error(0)
}

func (m *MockStore) CreateMessage(msg *models.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStore) GetMessage(id string) (*models.Message, error) {
	args := m.Called(id)
	if msg, ok := args.Get(0).(*models.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) DeleteMessage(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) RoomMessages(roomID string) ([]models.Message, error) {
	args := m.Called(roomID)
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockStore) TopicMessages(q string) ([]models.Message, error) {
	args := m.Called(q)
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockStore) AllMessages() ([]models.Message, error) {
	args := m.Called()
	return args.Get(0).([]models.Message), args.Error(1)
}
