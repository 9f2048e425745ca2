package repository

import (
	"time"

	"chatroom_web/internal/models"
	"chatroom_web/internal/storage"
)

type ParticipantRepository interface {
	Create(participant *models.Participant) error
	FindByName(name string) (*models.Participant, error)
	FindAll() ([]models.Participant, error)
	UpdateLastStatus(name string, lastStatus time.Time) (int64, error)
	FindStale(cutoff time.Time) ([]models.Participant, error)
	DeleteByName(name string) error
}

type participantRepository struct {
	db *storage.PostgresDB
}

func NewParticipantRepository(db *storage.PostgresDB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(participant *models.Participant) error {
	return r.db.Create(participant).Error
}

func (r *participantRepository) FindByName(name string) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.Where("name = ?", name).First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindAll 查詢所有目前在線的參與者，依加入順序排列
func (r *participantRepository) FindAll() ([]models.Participant, error) {
	var participants []models.Participant
	err := r.db.Order("id ASC").Find(&participants).Error
	return participants, err
}

// UpdateLastStatus 更新指定參與者的心跳時間，回傳受影響的行數
// 行數為 0 表示該暱稱不在聊天室中
func (r *participantRepository) UpdateLastStatus(name string, lastStatus time.Time) (int64, error) {
	result := r.db.Model(&models.Participant{}).Where("name = ?", name).Update("last_status", lastStatus)
	return result.RowsAffected, result.Error
}

// FindStale 查詢心跳時間早於 cutoff 的參與者，作為清理的快照
func (r *participantRepository) FindStale(cutoff time.Time) ([]models.Participant, error) {
	var participants []models.Participant
	err := r.db.Where("last_status < ?", cutoff).Find(&participants).Error
	return participants, err
}

// DeleteByName 將參與者移出聊天室
// 這裡必須硬刪除：軟刪除的行仍佔用唯一索引，會擋住同名的重新註冊
func (r *participantRepository) DeleteByName(name string) error {
	return r.db.Unscoped().Where("name = ?", name).Delete(&models.Participant{}).Error
}
