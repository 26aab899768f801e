package service

import (
	"SocialMapp/internal/api/dto"
	"SocialMapp/internal/repository"
	"context"
	"errors"
	"strings"
	"time"
)

type IdentityService interface {
	ResolveNickname(ctx context.Context, accountID string) (string, bool, error)
	ResolveDisplayName(ctx context.Context, accountID, fallbackEmail string) (string, error)
	SetNickname(ctx context.Context, accountID, nickname, email string) (*dto.UserProfileDTO, error)
	GetProfile(ctx context.Context, accountID, email string) (*dto.UserProfileDTO, error)
}

type identityServiceImpl struct {
	userRepo repository.UserProfileRepo
	now      func() time.Time
}

func NewIdentityService(userRepo repository.UserProfileRepo) IdentityService {
	return &identityServiceImpl{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// ResolveNickname 查询昵称, 资料不存在或未设置昵称时 ok 为 false
func (s *identityServiceImpl) ResolveNickname(ctx context.Context, accountID string) (string, bool, error) {
	profile, err := s.userRepo.GetProfile(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", false, nil
		}
		return "", false, dependency(err)
	}
	if profile.Nickname == "" {
		return "", false, nil
	}
	return profile.Nickname, true, nil
}

// ResolveDisplayName 有昵称用昵称, 否则回退到传入的邮箱
func (s *identityServiceImpl) ResolveDisplayName(ctx context.Context, accountID, fallbackEmail string) (string, error) {
	profile, err := s.userRepo.GetProfile(ctx, accountID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return "", dependency(err)
		}
		profile = nil
	}
	return profile.DisplayName(fallbackEmail), nil
}

// SetNickname 设置昵称, 合并写入用户资料
func (s *identityServiceImpl) SetNickname(ctx context.Context, accountID, nickname, email string) (*dto.UserProfileDTO, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, ErrEmptyNickname
	}

	now := s.now()
	if err := s.userRepo.UpsertNickname(ctx, accountID, nickname, email, now); err != nil {
		return nil, dependency(err)
	}
	return &dto.UserProfileDTO{
		Nickname:  nickname,
		Email:     email,
		UpdatedAt: &now,
	}, nil
}

// GetProfile 获取用户资料, 从未设置过昵称时只返回邮箱
func (s *identityServiceImpl) GetProfile(ctx context.Context, accountID, email string) (*dto.UserProfileDTO, error) {
	profile, err := s.userRepo.GetProfile(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &dto.UserProfileDTO{Email: email}, nil
		}
		return nil, dependency(err)
	}

	out := &dto.UserProfileDTO{
		Nickname: profile.Nickname,
		Email:    profile.Email,
	}
	if !profile.UpdatedAt.IsZero() {
		updatedAt := profile.UpdatedAt
		out.UpdatedAt = &updatedAt
	}
	return out, nil
}
