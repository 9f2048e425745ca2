package middleware

import (
	"github.com/gin-gonic/gin"
)

// Identity 是一個 Gin 中間件，從 User 請求頭取出呼叫者的暱稱
// 沒有任何 token 驗證，暱稱完全由呼叫者自行聲明
// 這是刻意保留的行為，不要在這裡加上認證
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 將暱稱設置到上下文中，後續 handler 以 userName 取用
		c.Set("userName", c.GetHeader("User"))
		c.Next()
	}
}
