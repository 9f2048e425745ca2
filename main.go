package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"chatroom_web/internal/api"
	"chatroom_web/internal/models"
	"chatroom_web/internal/repository"
	"chatroom_web/internal/service"
	"chatroom_web/internal/storage"
	"chatroom_web/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 從配置文件中讀取設置，如數據庫連接信息、服務器地址和清理節奏等
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	// 確保在程序結束時關閉數據庫連接
	defer db.Close()

	// 自動遷移資料庫結構
	// 這裡遷移 Participant 和 Message 兩個模型
	if err := db.AutoMigrate(&models.Participant{}, &models.Message{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 初始化 repositories 和 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	// 收到中斷信號時取消 ctx，清理器和服務器都依此停止
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 啟動離線清理器
	sweeper := service.NewSweeper(services.Participant, cfg.Sweep.Interval, cfg.Sweep.StaleThreshold)
	go sweeper.Run(ctx)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	// 啟動伺服器
	go func() {
		log.Printf("Server running on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received; shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shut down server: %v", err)
	}

	log.Println("Server stopped")
}
