package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenlog/internal/service"
	"github.com/zenlog/internal/store"
)

type postInput struct {
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Category   string   `json:"category"`
	CoverImage string   `json:"coverImage"`
}

func (in postInput) draft() service.Draft {
	return service.Draft{
		Title:      in.Title,
		Category:   in.Category,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		CoverImage: in.CoverImage,
		Tags:       in.Tags,
	}
}

// GetPosts 获取文章列表，支持 search 参数做标题/摘要的模糊过滤。
func (a *API) GetPosts(c *gin.Context) {
	posts := a.editor.Search(c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost 获取单篇文章，并附带渲染后的正文 HTML。
func (a *API) GetPost(c *gin.Context) {
	id := c.Param("id")
	for _, post := range a.editor.Posts() {
		if post.ID != id {
			continue
		}

		contentHTML, err := renderMarkdown(post.Content)
		if err != nil {
			respondError(c, http.StatusInternalServerError, localized(c, "Failed to render post content", "渲染文章内容失败"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"post": post, "contentHtml": contentHTML})
		return
	}
	respondError(c, http.StatusNotFound, localized(c, "Post not found", "文章不存在"))
}

// CreatePost 创建新文章：打开空白编辑会话、写入草稿并保存。
func (a *API) CreatePost(c *gin.Context) {
	var input postInput
	if !bindJSON(c, &input, localized(c, "Invalid request data", "无效的请求数据")) {
		return
	}

	if err := a.editor.OpenNew(); err != nil {
		respondError(c, http.StatusConflict, localized(c, "The editor is busy, try again later", "编辑器正忙，请稍后再试"))
		return
	}

	post, err := a.saveDraft(c, input)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "文章创建成功", "post": post})
}

// UpdatePost 更新已有文章：以文章副本打开编辑会话、写入草稿并保存。
func (a *API) UpdatePost(c *gin.Context) {
	var input postInput
	if !bindJSON(c, &input, localized(c, "Invalid request data", "无效的请求数据")) {
		return
	}

	if err := a.editor.OpenEdit(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, localized(c, "Post not found", "文章不存在"))
		default:
			respondError(c, http.StatusConflict, localized(c, "The editor is busy, try again later", "编辑器正忙，请稍后再试"))
		}
		return
	}

	post, err := a.saveDraft(c, input)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "文章更新成功", "post": post})
}

// DeletePost 删除文章，要求 confirm=true 查询参数作为显式确认。
func (a *API) DeletePost(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"

	if err := a.editor.Delete(c.Param("id"), confirmed); err != nil {
		switch {
		case errors.Is(err, service.ErrDeleteNotConfirmed):
			respondError(c, http.StatusBadRequest, localized(c, "Deletion requires confirmation", "删除操作需要确认"))
		default:
			respondError(c, http.StatusInternalServerError, localized(c, "Failed to delete post", "删除文章失败"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "文章已删除"})
}

func (a *API) saveDraft(c *gin.Context, input postInput) (store.Post, error) {
	if err := a.editor.UpdateDraft(input.draft()); err != nil {
		a.editor.Cancel()
		respondError(c, http.StatusConflict, localized(c, "The editor is busy, try again later", "编辑器正忙，请稍后再试"))
		return store.Post{}, err
	}

	post, err := a.editor.Save(c.Request.Context())
	if err != nil {
		a.editor.Cancel()
		switch {
		case errors.Is(err, service.ErrDraftIncomplete):
			respondError(c, http.StatusBadRequest, localized(c, "Title and content are required", "标题和正文不能为空"))
		case errors.Is(err, service.ErrEditorBusy):
			respondError(c, http.StatusConflict, localized(c, "A save is already in progress", "保存操作正在进行中"))
		default:
			respondError(c, http.StatusInternalServerError, localized(c, "Failed to save post", "保存文章失败"))
		}
		return store.Post{}, err
	}
	return post, nil
}
