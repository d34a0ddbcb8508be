package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenlog/internal/service"
)

type mediaInput struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (in mediaInput) toServiceInput() service.MediaInput {
	return service.MediaInput{
		Type:        in.Type,
		URL:         in.URL,
		Thumbnail:   in.Thumbnail,
		Title:       in.Title,
		Date:        in.Date,
		Description: in.Description,
	}
}

// GetGallery 获取作品集条目，支持 type 参数过滤（all/image/video）。
func (a *API) GetGallery(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": a.gallery.List(c.Query("type"))})
}

// CreateMedia 新增作品集条目。
func (a *API) CreateMedia(c *gin.Context) {
	var input mediaInput
	if !bindJSON(c, &input, "无效的请求数据") {
		return
	}

	item, err := a.gallery.Create(input.toServiceInput())
	if err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "作品创建成功", "item": item})
}

// UpdateMedia 更新作品集条目。
func (a *API) UpdateMedia(c *gin.Context) {
	var input mediaInput
	if !bindJSON(c, &input, "无效的请求数据") {
		return
	}

	item, err := a.gallery.Update(c.Param("id"), input.toServiceInput())
	if err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "作品更新成功", "item": item})
}

// DeleteMedia 删除作品集条目。
func (a *API) DeleteMedia(c *gin.Context) {
	if err := a.gallery.Delete(c.Param("id")); err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "作品已删除"})
}

func respondGalleryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMediaNotFound):
		respondError(c, http.StatusNotFound, "作品不存在")
	case errors.Is(err, service.ErrMediaURLMissing):
		respondError(c, http.StatusBadRequest, "作品地址不能为空")
	case errors.Is(err, service.ErrMediaTypeInvalid):
		respondError(c, http.StatusBadRequest, "作品类型无效")
	default:
		respondError(c, http.StatusInternalServerError, "保存作品失败")
	}
}
