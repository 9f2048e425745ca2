package repository

import (
	"chatroom_web/internal/models"
	"chatroom_web/internal/storage"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id uint) (*models.Message, error)
	FindVisibleTo(viewer string, limit int) ([]models.Message, error)
	Update(message *models.Message) error
	Delete(id uint) error
}

type messageRepository struct {
	db *storage.PostgresDB
}

func NewMessageRepository(db *storage.PostgresDB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) FindByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// FindVisibleTo 查詢 viewer 可見的消息，由新到舊排列
// 可見條件：自己發的、發給自己的、廣播的，或公開類型的消息
func (r *messageRepository) FindVisibleTo(viewer string, limit int) ([]models.Message, error) {
	query := r.db.
		Where("from_name = ? OR to_name = ? OR to_name = ? OR type = ?",
			viewer, viewer, models.BroadcastRecipient, models.TypeMessage).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var messages []models.Message
	err := query.Find(&messages).Error
	return messages, err
}

func (r *messageRepository) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

func (r *messageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Message{}, id).Error
}
