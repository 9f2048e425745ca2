package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"chatroom_web/internal/models"
	"chatroom_web/internal/repository"
)

// Message 是消息的對外表示
type Message struct {
	ID   uint   `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
	Time string `json:"time"`
}

type MessageService struct {
	messageRepo     repository.MessageRepository
	participantRepo repository.ParticipantRepository
}

func NewMessageService(messageRepo repository.MessageRepository, participantRepo repository.ParticipantRepository) *MessageService {
	return &MessageService{
		messageRepo:     messageRepo,
		participantRepo: participantRepo,
	}
}

// Append 存入一條用戶提交的消息
// 發送者必須是目前在線的參與者；系統事件不經過這裡，由註冊和清理直接寫入
func (s *MessageService) Append(from, to, text, msgType string) error {
	if err := s.checkSenderInRoom(from); err != nil {
		return err
	}

	message := models.NewUserMessage(from, to, text, msgType)
	return s.messageRepo.Create(&message)
}

// Query 回傳 viewer 可見的消息，由新到舊排列
// limit 大於 0 時只取最新的 limit 條，否則不限制數量
func (s *MessageService) Query(viewer string, limit int) ([]Message, error) {
	messageModels, err := s.messageRepo.FindVisibleTo(viewer, limit)
	if err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(messageModels))
	for _, model := range messageModels {
		messages = append(messages, convertModelToMessage(&model))
	}
	return messages, nil
}

// Delete 刪除一條消息，只有發送者本人可以刪除
func (s *MessageService) Delete(id uint, requester string) error {
	message, err := s.findMessage(id)
	if err != nil {
		return err
	}
	if message.FromName != requester {
		return ErrNotMessageOwner
	}
	return s.messageRepo.Delete(id)
}

// Update 修改一條消息的接收者、內容和類型，發送者和編號保持不變
func (s *MessageService) Update(id uint, requester, to, text, msgType string) error {
	if err := s.checkSenderInRoom(requester); err != nil {
		return err
	}

	message, err := s.findMessage(id)
	if err != nil {
		return err
	}
	if message.FromName != requester {
		return ErrNotMessageOwner
	}

	message.ToName = to
	message.Text = text
	message.Type = msgType
	message.Time = time.Now().Format(models.TimeLayout)
	return s.messageRepo.Update(message)
}

func (s *MessageService) checkSenderInRoom(name string) error {
	_, err := s.participantRepo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSenderNotInRoom
	}
	return err
}

func (s *MessageService) findMessage(id uint) (*models.Message, error) {
	message, err := s.messageRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMessageNotFound
	}
	return message, err
}

func convertModelToMessage(model *models.Message) Message {
	return Message{
		ID:   model.ID,
		From: model.FromName,
		To:   model.ToName,
		Text: model.Text,
		Type: model.Type,
		Time: model.Time,
	}
}
