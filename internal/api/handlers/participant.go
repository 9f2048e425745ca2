package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chatroom_web/internal/service"
)

// ParticipantHandler 處理與參與者相關的請求
type ParticipantHandler struct {
	participantService *service.ParticipantService
}

// NewParticipantHandler 創建一個新的 ParticipantHandler 實例
func NewParticipantHandler(participantService *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantService: participantService}
}

// RegisterInput 定義註冊請求的結構
type RegisterInput struct {
	Name string `json:"name" binding:"required,min=1"`
}

// Register 處理參與者加入聊天室
func (h *ParticipantHandler) Register(c *gin.Context) {
	var input RegisterInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.participantService.Register(input.Name); err != nil {
		if errors.Is(err, service.ErrNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "註冊失敗"})
		return
	}

	c.Status(http.StatusCreated)
}

// List 處理獲取在線參與者列表的請求
func (h *ParticipantHandler) List(c *gin.Context) {
	participants, err := h.participantService.List()
	if err != nil {
		log.Printf("list participants failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法獲取參與者列表"})
		return
	}

	c.JSON(http.StatusOK, participants)
}

// Heartbeat 處理參與者的心跳，暱稱取自 User 請求頭
func (h *ParticipantHandler) Heartbeat(c *gin.Context) {
	name := c.GetString("userName")

	if err := h.participantService.Heartbeat(name); err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("heartbeat failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "心跳更新失敗"})
		return
	}

	c.Status(http.StatusOK)
}
