package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenlog/internal/locale"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// localized 按请求语言挑选错误文案，语言来自会话偏好或 Accept-Language。
func localized(c *gin.Context, english, chinese string) string {
	return locale.Pick(resolveLanguage(c), english, chinese)
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}
