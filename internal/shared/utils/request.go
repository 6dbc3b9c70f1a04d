package utils

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID parse path param thành id dương; ok = false nếu không hợp lệ
func ParseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// QueryInt đọc query param kiểu int, trả về def nếu thiếu hoặc sai format
func QueryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// BindOptionalJSON bind JSON body nếu có; body rỗng → giữ nguyên dest
// (GET search cho phép không gửi body)
func BindOptionalJSON(c *gin.Context, dest interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dest); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
