package service

import "errors"

// 業務錯誤，handler 依此對應 HTTP 狀態碼
var (
	ErrNameTaken           = errors.New("暱稱已被使用")
	ErrParticipantNotFound = errors.New("參與者不在聊天室中")
	ErrSenderNotInRoom     = errors.New("發送者不在聊天室中")
	ErrMessageNotFound     = errors.New("消息不存在")
	ErrNotMessageOwner     = errors.New("只有發送者本人可以修改或刪除消息")
)
