// Package middleware 提供 Gin 中間件。
//
// 目前只有身份中間件：從請求頭取出呼叫者聲明的暱稱。
package middleware
