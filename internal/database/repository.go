package database

import "github.com/agora-forum/agora/internal/models"

// Store is the persistence contract the handlers depend on. *Database is
// the Postgres implementation; MockStore stands in for it in tests.
type Store interface {
	CreateUser(user *models.User) error
	GetUser(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	GetUserRooms(userID string) ([]models.Room, error)
	GetUserMessages(userID string) ([]models.Message, error)

	GetOrCreateTopic(name string) (*models.Topic, bool, error)
	SearchTopics(q string) ([]models.Topic, error)
	RecentTopics(limit int) ([]models.Topic, error)

	CreateRoom(room *models.Room) error
	GetRoom(id string) (*models.Room, error)
	SearchRooms(q string) ([]models.Room, error)
	UpdateRoom(room *models.Room) error
	DeleteRoom(id string) error
	AddParticipant(roomID, userID string) error

	CreateMessage(msg *models.Message) error
	GetMessage(id string) (*models.Message, error)
	DeleteMessage(id string) error
	RoomMessages(roomID string) ([]models.Message, error)
	TopicMessages(q string) ([]models.Message, error)
	AllMessages() ([]models.Message, error)
}

var _ Store = (*Database)(nil)
