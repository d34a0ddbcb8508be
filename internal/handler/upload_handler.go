package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenlog/internal/service"
)

const maxCoverUploadBytes = 8 << 20

// UploadCover 处理封面图片上传，编码为 data URI 返回给前端草稿使用。
func (a *API) UploadCover(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "未找到上传的图片")
		return
	}
	if file.Size > maxCoverUploadBytes {
		respondError(c, http.StatusBadRequest, "图片大小超出限制")
		return
	}

	reader, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "读取上传文件失败")
		return
	}
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, maxCoverUploadBytes))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "读取上传文件失败")
		return
	}

	uri, width, height, err := service.EncodeCoverImage(data)
	if err != nil {
		if errors.Is(err, service.ErrCoverNotImage) {
			respondError(c, http.StatusBadRequest, "只允许上传图片文件")
			return
		}
		respondError(c, http.StatusInternalServerError, "处理图片失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coverImage": uri,
		"width":      width,
		"height":     height,
	})
}
