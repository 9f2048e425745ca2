package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"chatroom_web/internal/models"
	"chatroom_web/internal/repository"
)

// 加入與離開聊天室的系統事件內容
const (
	joinRoomText  = "entra na sala..."
	leaveRoomText = "sai da sala..."
)

// Participant 是參與者的對外表示，LastStatus 以 Unix 毫秒輸出
type Participant struct {
	Name       string `json:"name"`
	LastStatus int64  `json:"lastStatus"`
}

type ParticipantService struct {
	participantRepo repository.ParticipantRepository
	messageRepo     repository.MessageRepository
}

func NewParticipantService(participantRepo repository.ParticipantRepository, messageRepo repository.MessageRepository) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		messageRepo:     messageRepo,
	}
}

// Register 讓新參與者加入聊天室，並廣播一條加入事件
func (s *ParticipantService) Register(name string) error {
	_, err := s.participantRepo.FindByName(name)
	if err == nil {
		return ErrNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	participant := models.NewParticipant(name)
	if err := s.participantRepo.Create(&participant); err != nil {
		// 兩個同名註冊同時通過存在性檢查時，由唯一索引擋下第二個
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrNameTaken
		}
		return err
	}

	joinMessage := models.NewStatusMessage(name, joinRoomText)
	return s.messageRepo.Create(&joinMessage)
}

// List 回傳所有目前在線的參與者
func (s *ParticipantService) List() ([]Participant, error) {
	participantModels, err := s.participantRepo.FindAll()
	if err != nil {
		return nil, err
	}

	participants := make([]Participant, 0, len(participantModels))
	for _, model := range participantModels {
		participants = append(participants, Participant{
			Name:       model.Name,
			LastStatus: model.LastStatus.UnixMilli(),
		})
	}
	return participants, nil
}

// Heartbeat 更新參與者的心跳時間，表示其仍然在線
func (s *ParticipantService) Heartbeat(name string) error {
	affected, err := s.participantRepo.UpdateLastStatus(name, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrParticipantNotFound
	}
	return nil
}

// Sweep 移除心跳超過 staleThreshold 的參與者，每移除一人廣播一條離開事件
// 以快照為準：快照之後、刪除之前才到達的心跳可能仍被移除
func (s *ParticipantService) Sweep(now time.Time, staleThreshold time.Duration) (int, error) {
	stale, err := s.participantRepo.FindStale(now.Add(-staleThreshold))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, participant := range stale {
		if err := s.participantRepo.DeleteByName(participant.Name); err != nil {
			return removed, err
		}
		leaveMessage := models.NewStatusMessage(participant.Name, leaveRoomText)
		if err := s.messageRepo.Create(&leaveMessage); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
