package models

import (
	"time"

	"gorm.io/gorm"
)

// Participant 表示目前在聊天室中的參與者
type Participant struct {
	gorm.Model           // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Name       string    `gorm:"uniqueIndex;not null"` // 暱稱，必須唯一
	LastStatus time.Time `gorm:"not null"`             // 最後一次心跳的時間，清理器以此判斷是否離線
}

// NewParticipant 創建一個新的參與者，LastStatus 設為當前時間
func NewParticipant(name string) Participant {
	return Participant{
		Name:       name,
		LastStatus: time.Now(),
	}
}
