package handler

import (
	"SocialMapp/internal/api/dto"
	"SocialMapp/internal/api/middleware"
	"SocialMapp/internal/pkg/response"
	"SocialMapp/internal/pkg/util"
	"SocialMapp/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	feedSvc service.FeedService
}

func NewCommentHandler(feedSvc service.FeedService) *CommentHandler {
	return &CommentHandler{
		feedSvc: feedSvc,
	}
}

// AddComment 评论帖子
func (s *CommentHandler) AddComment(c *gin.Context) {
	var req dto.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", service.ErrValidation, err.Error()))
		return
	}

	comment, err := s.feedSvc.AddComment(c.Request.Context(), middleware.CurrentAccount(c), c.Param("post_id"), req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// ListComments 评论列表, 最新在前
func (s *CommentHandler) ListComments(c *gin.Context) {
	comments, err := s.feedSvc.ListComments(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

// DeleteComment 删除自己的评论
func (s *CommentHandler) DeleteComment(c *gin.Context) {
	err := s.feedSvc.DeleteComment(c.Request.Context(), middleware.CurrentAccount(c), c.Param("comment_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "评论已删除"})
}
