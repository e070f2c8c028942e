package database

import (
	"gorm.io/gorm"

	"github.com/agora-forum/agora/internal/models"
)

func (d *Database) CreateRoom(room *models.Room) error {
	return d.db.Create(room).Error
}

func (d *Database) GetRoom(id string) (*models.Room, error) {
	var room models.Room
	err := d.db.
		Preload("Host").
		Preload("Topic").
		Preload("Participants").
		First(&room, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// SearchRooms returns rooms where q is a case-insensitive substring of the
// topic name, room name, or description. An empty q matches every room.
func (d *Database) SearchRooms(q string) ([]models.Room, error) {
	var rooms []models.Room
	like := "%" + q + "%"
	err := d.db.
		Joins("LEFT JOIN topics ON topics.id = rooms.topic_id").
		Where("topics.name ILIKE ? OR rooms.name ILIKE ? OR rooms.description ILIKE ?", like, like, like).
		Order("rooms.updated_at DESC, rooms.created_at DESC").
		Preload("Host").
		Preload("Topic").
		Preload("Participants").
		Find(&rooms).Error
	return rooms, err
}

func (d *Database) UpdateRoom(room *models.Room) error {
	return d.db.Save(room).Error
}

// DeleteRoom removes the room, its messages, and its participant links in
// one transaction. A message never outlives its room.
func (d *Database) DeleteRoom(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Message{}, "room_id = ?", id).Error; err != nil {
			return err
		}

		var room models.Room
		if err := tx.First(&room, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&room).Association("Participants").Clear(); err != nil {
			return err
		}

		return tx.Delete(&room).Error
	})
}

// AddParticipant joins the user to the room. Re-adding an existing
// participant is a no-op.
func (d *Database) AddParticipant(roomID, userID string) error {
	var room models.Room
	var user models.User

	if err := d.db.First(&room, "id = ?", roomID).Error; err != nil {
		return err
	}

	if err := d.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	return d.db.Model(&room).Association("Participants").Append(&user)
}
