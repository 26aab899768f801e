package handler

import (
	"SocialMapp/internal/api/dto"
	"SocialMapp/internal/api/middleware"
	"SocialMapp/internal/pkg/response"
	"SocialMapp/internal/pkg/util"
	"SocialMapp/internal/service"
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenRevoker 注销时吊销当前凭据
type TokenRevoker interface {
	Revoke(ctx context.Context, token string) error
}

type UserHandler struct {
	feedSvc service.FeedService
	revoker TokenRevoker
}

func NewUserHandler(feedSvc service.FeedService, revoker TokenRevoker) *UserHandler {
	return &UserHandler{
		feedSvc: feedSvc,
		revoker: revoker,
	}
}

// SetNickname 设置昵称
func (s *UserHandler) SetNickname(c *gin.Context) {
	var req dto.SetNicknameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, fmt.Errorf("%w: %s", service.ErrValidation, err.Error()))
		return
	}

	profile, err := s.feedSvc.SetNickname(c.Request.Context(), middleware.CurrentAccount(c), req.Nickname)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// GetProfile 获取个人资料
func (s *UserHandler) GetProfile(c *gin.Context) {
	profile, err := s.feedSvc.GetProfile(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// Logout 吊销当前凭据
func (s *UserHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := s.revoker.Revoke(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
