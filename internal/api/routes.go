package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatroom_web/internal/api/handlers"
	"chatroom_web/internal/middleware"
	"chatroom_web/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	participantHandler := handlers.NewParticipantHandler(services.Participant)
	messageHandler := handlers.NewMessageHandler(services.Message)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 基本的健康檢查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// 註冊不需要身份，暱稱在請求體中
	r.POST("/participants", participantHandler.Register)
	r.GET("/participants", participantHandler.List)

	// 其餘操作都以 User 請求頭聲明身份
	identified := r.Group("/")
	identified.Use(middleware.Identity())
	{
		identified.POST("/status", participantHandler.Heartbeat)

		identified.POST("/messages", messageHandler.Append)
		identified.GET("/messages", messageHandler.Query)
		identified.DELETE("/messages/:id", messageHandler.Delete)
		identified.PUT("/messages/:id", messageHandler.Update)
	}
}
