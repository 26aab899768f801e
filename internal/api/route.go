package api

import (
	"SocialMapp/internal/api/middleware"
	"SocialMapp/internal/pkg/logger"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RouterOptions 路由依赖的非 Handler 组件
type RouterOptions struct {
	Verifier     middleware.TokenVerifier
	AllowOrigins []string
	AccessLog    io.Writer
	LogToken     string
	LogIndex     string
}

func SetupRouter(group *HandlersGroup, opts RouterOptions) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(opts.AllowOrigins))
	if opts.AccessLog != nil {
		logger.SetupGin(r, opts.AccessLog, opts.LogToken, opts.LogIndex)
	} else {
		r.Use(gin.Recovery())
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		authGroup := apiGroup.Group("")
		authGroup.Use(middleware.AuthMiddleware(opts.Verifier))

		postGroup := authGroup.Group("/posts")
		{
			postGroup.POST("", group.PostHandler.CreatePost)
			postGroup.GET("", group.PostHandler.ListFeed)
			postGroup.DELETE("/:post_id", group.PostHandler.DeletePost)

			postGroup.POST("/:post_id/comments", group.CommentHandler.AddComment)
			postGroup.GET("/:post_id/comments", group.CommentHandler.ListComments)

			postGroup.POST("/:post_id/like", group.LikeHandler.LikePost)
			postGroup.DELETE("/:post_id/like", group.LikeHandler.UnlikePost)
			postGroup.GET("/:post_id/likes", group.LikeHandler.GetLikeStatus)
		}

		commentGroup := authGroup.Group("/comments")
		{
			commentGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
		}

		userGroup := authGroup.Group("/user")
		{
			userGroup.POST("/nickname", group.UserHandler.SetNickname)
			userGroup.GET("/profile", group.UserHandler.GetProfile)
			userGroup.POST("/logout", group.UserHandler.Logout)
		}
	}

	return r
}
