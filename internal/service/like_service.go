package service

import (
	"SocialMapp/internal/api/dto"
	"SocialMapp/internal/model"
	"SocialMapp/internal/repository"
	"context"
	"errors"
	"time"
)

type LikeService interface {
	AddLike(ctx context.Context, postID, accountID string) (int64, error)
	RemoveLike(ctx context.Context, postID, accountID string) (int64, error)
	GetLikeStatus(ctx context.Context, postID, accountID string) (*dto.LikeStatusDTO, error)
	CountLikes(ctx context.Context, postID string) (int64, error)
	ListForPost(ctx context.Context, postID string) ([]*model.Like, error)
	DeleteAllForPost(ctx context.Context, postID string) (int64, error)
}

type likeServiceImpl struct {
	likeRepo repository.LikeRepo
	postRepo repository.PostRepo
	locker   Locker
	now      func() time.Time
}

func NewLikeService(likeRepo repository.LikeRepo, postRepo repository.PostRepo, locker Locker) LikeService {
	return &likeServiceImpl{
		likeRepo: likeRepo,
		postRepo: postRepo,
		locker:   locker,
		now:      time.Now,
	}
}

// AddLike 点赞; 唯一性由存储层按 (post_id, author_id) 条件插入保证, 与帖子删除共用帖子锁
func (s *likeServiceImpl) AddLike(ctx context.Context, postID, accountID string) (int64, error) {
	unlock, err := lockPost(ctx, s.locker, postID)
	if err != nil {
		return 0, err
	}
	defer unlock()

	if err = s.checkPost(ctx, postID); err != nil {
		return 0, err
	}

	err = s.likeRepo.CreateLike(ctx, model.NewLike(postID, accountID, s.now()))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrAlreadyLiked
		}
		return 0, dependency(err)
	}
	return s.CountLikes(ctx, postID)
}

// RemoveLike 取消点赞
func (s *likeServiceImpl) RemoveLike(ctx context.Context, postID, accountID string) (int64, error) {
	if err := s.likeRepo.DeleteLike(ctx, postID, accountID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrLikeNotFound
		}
		return 0, dependency(err)
	}
	return s.CountLikes(ctx, postID)
}

func (s *likeServiceImpl) GetLikeStatus(ctx context.Context, postID, accountID string) (*dto.LikeStatusDTO, error) {
	hasLiked, err := s.likeRepo.ExistsLike(ctx, postID, accountID)
	if err != nil {
		return nil, dependency(err)
	}
	count, err := s.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStatusDTO{HasLiked: hasLiked, LikesCount: count}, nil
}

func (s *likeServiceImpl) CountLikes(ctx context.Context, postID string) (int64, error) {
	count, err := s.likeRepo.CountByPostID(ctx, postID)
	if err != nil {
		return 0, dependency(err)
	}
	return count, nil
}

func (s *likeServiceImpl) ListForPost(ctx context.Context, postID string) ([]*model.Like, error) {
	list, err := s.likeRepo.ListByPostID(ctx, postID)
	if err != nil {
		return nil, dependency(err)
	}
	return list, nil
}

// DeleteAllForPost 仅供帖子级联删除使用
func (s *likeServiceImpl) DeleteAllForPost(ctx context.Context, postID string) (int64, error) {
	deleted, err := s.likeRepo.DeleteByPostID(ctx, postID)
	if err != nil {
		return 0, dependency(err)
	}
	return deleted, nil
}

func (s *likeServiceImpl) checkPost(ctx context.Context, postID string) error {
	if _, err := s.postRepo.GetPost(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return dependency(err)
	}
	return nil
}
