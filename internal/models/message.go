package models

import (
	"time"

	"gorm.io/gorm"
)

// Message 代表一條聊天室消息，同時滿足用戶消息和系統事件的存儲需求
type Message struct {
	gorm.Model
	FromName string `gorm:"column:from_name;type:varchar(100);not null"` // 發送者暱稱
	ToName   string `gorm:"column:to_name;type:varchar(100);not null"`   // 接收者暱稱，或廣播標記 Todos
	Text     string `gorm:"type:text;not null"`                          // 消息內容
	Type     string `gorm:"type:varchar(20);not null"`                   // 消息類型
	Time     string `gorm:"type:varchar(10);not null"`                   // 顯示用時間字串（HH:MM:SS），不參與排序
}

// MessageType 定義消息類型的常量
const (
	TypeMessage        = "message"         // 公開消息，所有人可見
	TypePrivateMessage = "private_message" // 私人消息，僅發送者與接收者可見
	TypeStatus         = "status"          // 系統事件（加入/離開），不可由用戶直接提交
)

// BroadcastRecipient 是表示「發給所有人」的特殊接收者
const BroadcastRecipient = "Todos"

// TimeLayout 是消息顯示時間的格式
const TimeLayout = "15:04:05"

// NewUserMessage 創建一條用戶提交的消息
func NewUserMessage(from, to, text, msgType string) Message {
	return Message{
		FromName: from,
		ToName:   to,
		Text:     text,
		Type:     msgType,
		Time:     time.Now().Format(TimeLayout),
	}
}

// NewStatusMessage 創建一條系統事件消息（加入或離開聊天室）
func NewStatusMessage(from, text string) Message {
	return Message{
		FromName: from,
		ToName:   BroadcastRecipient,
		Text:     text,
		Type:     TypeStatus,
		Time:     time.Now().Format(TimeLayout),
	}
}
