package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/zenlog/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由。
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件（用于语言偏好）
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("zenlog_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/posts", api.GetPosts)
		apiGroup.GET("/posts/:id", api.GetPost)
		apiGroup.POST("/posts", api.CreatePost)
		apiGroup.PUT("/posts/:id", api.UpdatePost)
		apiGroup.DELETE("/posts/:id", api.DeletePost)

		apiGroup.GET("/moments", api.GetMoments)
		apiGroup.POST("/moments", api.CreateMoment)

		apiGroup.GET("/gallery", api.GetGallery)
		apiGroup.POST("/gallery", api.CreateMedia)
		apiGroup.PUT("/gallery/:id", api.UpdateMedia)
		apiGroup.DELETE("/gallery/:id", api.DeleteMedia)

		apiGroup.POST("/upload/cover", api.UploadCover)

		assist := apiGroup.Group("/assist")
		{
			assist.POST("/outline", api.GenerateOutline)
			assist.POST("/summary", api.SummarizeContent)
			assist.POST("/mood", api.AnalyzeMood)
			assist.POST("/cover", api.GenerateCover)
		}

		apiGroup.GET("/language", api.GetLanguage)
		apiGroup.POST("/language", api.SetLanguage)
	}

	return r
}
