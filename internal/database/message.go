package database

import (
	"github.com/agora-forum/agora/internal/models"
)

func (d *Database) CreateMessage(msg *models.Message) error {
	return d.db.Create(msg).Error
}

func (d *Database) GetMessage(id string) (*models.Message, error) {
	var msg models.Message
	err := d.db.
		Preload("User").
		Preload("Room").
		First(&msg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (d *Database) DeleteMessage(id string) error {
	return d.db.Delete(&models.Message{}, "id = ?", id).Error
}

// RoomMessages returns the room's messages, most recent first.
func (d *Database) RoomMessages(roomID string) ([]models.Message, error) {
	var messages []models.Message
	err := d.db.
		Where("room_id = ?", roomID).
		Order("updated_at DESC, created_at DESC").
		Preload("User").
		Find(&messages).Error
	return messages, err
}

// TopicMessages returns messages in rooms whose topic name contains q,
// case-insensitively. This is the looser filter behind the home activity
// panel: it ignores room names and descriptions.
func (d *Database) TopicMessages(q string) ([]models.Message, error) {
	var messages []models.Message
	err := d.db.
		Joins("JOIN rooms ON rooms.id = messages.room_id").
		Joins("LEFT JOIN topics ON topics.id = rooms.topic_id").
		Where("topics.name ILIKE ?", "%"+q+"%").
		Order("messages.updated_at DESC, messages.created_at DESC").
		Preload("User").
		Preload("Room").
		Find(&messages).Error
	return messages, err
}

func (d *Database) AllMessages() ([]models.Message, error) {
	var messages []models.Message
	err := d.db.
		Order("updated_at DESC, created_at DESC").
		Preload("User").
		Preload("Room").
		Find(&messages).Error
	return messages, err
}
