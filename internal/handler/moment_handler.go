package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenlog/internal/service"
)

type momentInput struct {
	Text string `json:"text"`
}

// GetMoments 获取瞬间列表（最新的在最前）。
func (a *API) GetMoments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"moments": a.moments.Moments()})
}

// CreateMoment 记录一条新的瞬间，情绪表情由 AI 分析，失败时使用兜底表情。
func (a *API) CreateMoment(c *gin.Context) {
	var input momentInput
	if !bindJSON(c, &input, "无效的请求数据") {
		return
	}

	moment, err := a.moments.Share(c.Request.Context(), input.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMomentEmpty):
			respondError(c, http.StatusBadRequest, "内容不能为空")
		case errors.Is(err, service.ErrCaptureBusy):
			respondError(c, http.StatusConflict, "正在分析中，请稍候")
		default:
			respondError(c, http.StatusInternalServerError, "保存瞬间失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "分享成功", "moment": moment})
}
