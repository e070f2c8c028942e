package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/agora-forum/agora/internal/models"
)

// GetOrCreateTopic resolves a topic by exact, case-sensitive name, creating
// it when absent. The unique index on topics.name backs the insert: losing
// a concurrent create race falls through to re-reading the winner, so the
// same name never yields two topics.
func (d *Database) GetOrCreateTopic(name string) (*models.Topic, bool, error) {
	var topic models.Topic
	err := d.db.Where("name = ?", name).First(&topic).Error
	if err == nil {
		return &topic, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	topic = models.Topic{Name: name}
	if err := d.db.Create(&topic).Error; err != nil {
		if ferr := d.db.Where("name = ?", name).First(&topic).Error; ferr == nil {
			return &topic, false, nil
		}
		return nil, false, err
	}
	return &topic, true, nil
}

// SearchTopics returns topics whose name contains q, case-insensitively.
// An empty q matches everything.
func (d *Database) SearchTopics(q string) ([]models.Topic, error) {
	var topics []models.Topic
	err := d.db.
		Where("name ILIKE ?", "%"+q+"%").
		Order("name ASC").
		Find(&topics).Error
	return topics, err
}

func (d *Database) RecentTopics(limit int) ([]models.Topic, error) {
	var topics []models.Topic
	err := d.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&topics).Error
	return topics, err
}
