package handler

import (
	"SocialMapp/internal/api/dto"
	"SocialMapp/internal/api/middleware"
	"SocialMapp/internal/pkg/response"
	"SocialMapp/internal/pkg/util"
	"SocialMapp/internal/service"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	feedSvc service.FeedService
}

func NewPostHandler(feedSvc service.FeedService) *PostHandler {
	return &PostHandler{
		feedSvc: feedSvc,
	}
}

// CreatePost 发帖, 图片以 base64 传入, 允许带 data URL 前缀
func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", service.ErrValidation, err.Error()))
		return
	}

	image, err := decodeImage(req.ImageBase64)
	if err != nil {
		response.Error(c, service.ErrInvalidImage)
		return
	}

	post, err := s.feedSvc.SubmitPost(c.Request.Context(), middleware.CurrentAccount(c), req.Text, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// ListFeed 信息流
func (s *PostHandler) ListFeed(c *gin.Context) {
	posts, err := s.feedSvc.ListFeed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// DeletePost 删除帖子及其评论, 点赞和图片
func (s *PostHandler) DeletePost(c *gin.Context) {
	res, err := s.feedSvc.DeletePost(c.Request.Context(), middleware.CurrentAccount(c), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func decodeImage(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if i := strings.Index(raw, ","); strings.HasPrefix(raw, "data:") && i > 0 {
		raw = raw[i+1:]
	}
	return base64.StdEncoding.DecodeString(raw)
}
