package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chatroom_web/internal/service"
)

// MessageHandler 處理與消息相關的請求
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler 創建一個新的 MessageHandler 實例
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// MessageInput 定義發送和修改消息的請求結構
// type 只允許 message 和 private_message，status 由系統產生，不可提交
type MessageInput struct {
	To   string `json:"to" binding:"required,min=1"`
	Text string `json:"text" binding:"required,min=1"`
	Type string `json:"type" binding:"required,oneof=message private_message"`
}

// Append 處理發送消息，發送者暱稱取自 User 請求頭
func (h *MessageHandler) Append(c *gin.Context) {
	var input MessageInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	from := c.GetString("userName")
	if err := h.messageService.Append(from, input.To, input.Text, input.Type); err != nil {
		if errors.Is(err, service.ErrSenderNotInRoom) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		log.Printf("append message failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "發送消息失敗"})
		return
	}

	c.Status(http.StatusCreated)
}

// Query 處理獲取消息列表的請求，只回傳 viewer 可見的消息
// limit 小於等於 0 或無法解析時不限制數量
func (h *MessageHandler) Query(c *gin.Context) {
	viewer := c.GetString("userName")
	limit, _ := strconv.Atoi(c.Query("limit"))

	messages, err := h.messageService.Query(viewer, limit)
	if err != nil {
		log.Printf("query messages failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法獲取消息列表"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// Delete 處理刪除消息的請求，只有發送者本人可以刪除
func (h *MessageHandler) Delete(c *gin.Context) {
	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "不存在的消息ID"})
		return
	}

	requester := c.GetString("userName")
	if err := h.messageService.Delete(uint(messageID), requester); err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotMessageOwner):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			log.Printf("delete message failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "刪除消息失敗"})
		}
		return
	}

	c.Status(http.StatusOK)
}

// Update 處理修改消息的請求，發送者和消息編號保持不變
func (h *MessageHandler) Update(c *gin.Context) {
	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "不存在的消息ID"})
		return
	}

	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	requester := c.GetString("userName")
	if err := h.messageService.Update(uint(messageID), requester, input.To, input.Text, input.Type); err != nil {
		switch {
		case errors.Is(err, service.ErrSenderNotInRoom):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotMessageOwner):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			log.Printf("update message failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "修改消息失敗"})
		}
		return
	}

	c.Status(http.StatusOK)
}
