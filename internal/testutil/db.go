package testutil

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chatroom_web/internal/models"
	"chatroom_web/internal/storage"
)

// NewTestDB 建立一個測試專用的 in-memory SQLite 資料庫並完成遷移
// 以測試名稱區分 DSN，讓各測試之間互不影響
func NewTestDB(t *testing.T) *storage.PostgresDB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// 單一連接即可，同時避免 shared cache 模式下的鎖衝突
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &storage.PostgresDB{DB: db}
	if err := testDB.AutoMigrate(&models.Participant{}, &models.Message{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}
