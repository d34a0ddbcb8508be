package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zenlog/internal/service"
)

// GenerateOutline 为给定主题生成文章大纲。大纲没有兜底值，失败会如实返回。
func (a *API) GenerateOutline(c *gin.Context) {
	var input struct {
		Topic string `json:"topic"`
	}
	if !bindJSON(c, &input, "无效的请求数据") {
		return
	}
	if strings.TrimSpace(input.Topic) == "" {
		respondError(c, http.StatusBadRequest, "主题不能为空")
		return
	}

	outline, err := a.assist.GenerateOutline(c.Request.Context(), input.Topic)
	if err != nil {
		if errors.Is(err, service.ErrAIAPIKeyMissing) {
			respondError(c, http.StatusServiceUnavailable, "尚未配置 AI 接口密钥")
			return
		}
		respondError(c, http.StatusBadGateway, "生成大纲失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"outline": outline})
}

// SummarizeContent 生成两句话的预览摘要，失败时回退为正文截断。
func (a *API) SummarizeContent(c *gin.Context) {
	var input struct {
		Content string `json:"content"`
	}
	if !bindJSON(c, &input, "无效的请求数据") {
		return
	}
	if strings.TrimSpace(input.Content) == "" {
		respondError(c, http.StatusBadRequest, "正文不能为空")
		return
	}

	summary, err := a.assist.Summarize(c.Request.Context(), input.Content)
	if err != nil || strings.TrimSpace(summary) == "" {
		c.JSON(http.StatusOK, gin.H{
			"summary":  service.FallbackExcerpt(input.Content),
			"fallback": true,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary, "fallback": false})
}

// AnalyzeMood 返回代表短文情绪的表情，失败时自动回退为默认表情。
func (a *API) AnalyzeMood(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if !bindJSON(c, &input, "无效的请求数据") {
		return
	}
	if strings.TrimSpace(input.Text) == "" {
		respondError(c, http.StatusBadRequest, "内容不能为空")
		return
	}

	c.JSON(http.StatusOK, gin.H{"mood": a.assist.AnalyzeMood(c.Request.Context(), input.Text)})
}

// GenerateCover 依据标题与正文生成封面图，失败时返回空的 coverImage。
func (a *API) GenerateCover(c *gin.Context) {
	var input struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if !bindJSON(c, &input, "无效的请求数据") {
		return
	}

	prompt := service.CoverPrompt(input.Title, input.Content)
	if prompt == "" {
		respondError(c, http.StatusBadRequest, "标题或正文不能为空")
		return
	}

	uri := a.assist.GenerateCoverImage(c.Request.Context(), prompt)
	c.JSON(http.StatusOK, gin.H{"coverImage": uri})
}
