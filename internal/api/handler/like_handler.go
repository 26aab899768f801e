package handler

import (
	"SocialMapp/internal/api/middleware"
	"SocialMapp/internal/pkg/response"
	"SocialMapp/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	feedSvc service.FeedService
}

func NewLikeHandler(feedSvc service.FeedService) *LikeHandler {
	return &LikeHandler{
		feedSvc: feedSvc,
	}
}

// LikePost 点赞
func (s *LikeHandler) LikePost(c *gin.Context) {
	res, err := s.feedSvc.LikePost(c.Request.Context(), middleware.CurrentAccount(c), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// UnlikePost 取消点赞
func (s *LikeHandler) UnlikePost(c *gin.Context) {
	res, err := s.feedSvc.UnlikePost(c.Request.Context(), middleware.CurrentAccount(c), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetLikeStatus 当前账号是否已点赞及总数
func (s *LikeHandler) GetLikeStatus(c *gin.Context) {
	res, err := s.feedSvc.GetLikeStatus(c.Request.Context(), middleware.CurrentAccount(c), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
