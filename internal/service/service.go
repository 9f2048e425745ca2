package service

import (
	"chatroom_web/internal/repository"
)

type Services struct {
	Participant *ParticipantService
	Message     *MessageService
}

func NewServices(repos *repository.Repositories) *Services {
	participantService := NewParticipantService(repos.Participant, repos.Message)
	messageService := NewMessageService(repos.Message, repos.Participant)
	return &Services{
		Participant: participantService,
		Message:     messageService,
	}
}
