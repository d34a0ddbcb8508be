package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/zenlog/internal/locale"
)

const sessionLanguageKey = "language"

// GetLanguage 返回当前界面语言：会话偏好优先，其次 Accept-Language，默认中文。
func (a *API) GetLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"language": resolveLanguage(c)})
}

// SetLanguage 将界面语言写入会话。
func (a *API) SetLanguage(c *gin.Context) {
	var input struct {
		Language string `json:"language"`
	}
	if !bindJSON(c, &input, "无效的请求数据") {
		return
	}

	normalized := locale.NormalizeLanguage(input.Language)
	if normalized == "" {
		respondError(c, http.StatusBadRequest, "不支持的语言")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionLanguageKey, normalized)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "保存语言偏好失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": normalized})
}

func resolveLanguage(c *gin.Context) string {
	session := sessions.Default(c)
	if stored, ok := session.Get(sessionLanguageKey).(string); ok {
		if normalized := locale.NormalizeLanguage(stored); normalized != "" {
			return normalized
		}
	}
	if fromHeader := locale.LanguageFromAcceptLanguage(c.GetHeader("Accept-Language")); fromHeader != "" {
		return fromHeader
	}
	return locale.LanguageChinese
}
