package repository

import "chatroom_web/internal/storage"

type Repositories struct {
	Participant ParticipantRepository
	Message     MessageRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Participant: NewParticipantRepository(db),
		Message:     NewMessageRepository(db),
	}
}
