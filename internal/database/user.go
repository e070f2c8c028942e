package database

import (
	"github.com/agora-forum/agora/internal/models"
)

func (d *Database) CreateUser(user *models.User) error {
	return d.db.Create(user).Error
}

func (d *Database) GetUser(id string) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) GetUserByEmail(email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) UpdateUser(user *models.User) error {
	return d.db.Save(user).Error
}

// GetUserRooms returns the rooms hosted by the user, most recently active
// first.
func (d *Database) GetUserRooms(userID string) ([]models.Room, error) {
	var rooms []models.Room
	err := d.db.
		Where("host_id = ?", userID).
		Order("updated_at DESC, created_at DESC").
		Preload("Topic").
		Preload("Host").
		Preload("Participants").
		Find(&rooms).Error
	return rooms, err
}

// GetUserMessages returns the messages authored by the user, most recent
// first.
func (d *Database) GetUserMessages(userID string) ([]models.Message, error) {
	var messages []models.Message
	err := d.db.
		Where("user_id = ?", userID).
		Order("updated_at DESC, created_at DESC").
		Preload("User").
		Preload("Room").
		Find(&messages).Error
	return messages, err
}
