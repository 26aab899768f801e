package service

import (
	"SocialMapp/internal/api/dto"
	"context"
	"sort"
)

// Account 已通过凭据校验的调用方
type Account struct {
	ID    string
	Email string
}

func (a Account) valid() bool {
	return a.ID != ""
}

// FeedService 对外暴露的组合层, 写操作都以调用方账号执行
type FeedService interface {
	SubmitPost(ctx context.Context, acct Account, text string, image []byte) (*dto.PostDTO, error)
	ListFeed(ctx context.Context) ([]*dto.FeedPostDTO, error)
	DeletePost(ctx context.Context, acct Account, postID string) (*dto.DeletePostResultDTO, error)
	AddComment(ctx context.Context, acct Account, postID, text string) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, postID string) ([]*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, acct Account, commentID string) error
	LikePost(ctx context.Context, acct Account, postID string) (*dto.LikeCountDTO, error)
	UnlikePost(ctx context.Context, acct Account, postID string) (*dto.LikeCountDTO, error)
	GetLikeStatus(ctx context.Context, acct Account, postID string) (*dto.LikeStatusDTO, error)
	SetNickname(ctx context.Context, acct Account, nickname string) (*dto.UserProfileDTO, error)
	GetProfile(ctx context.Context, acct Account) (*dto.UserProfileDTO, error)
}

type feedServiceImpl struct {
	postService     PostService
	commentService  CommentService
	likeService     LikeService
	identityService IdentityService
}

func NewFeedService(postService PostService, commentService CommentService, likeService LikeService, identityService IdentityService) FeedService {
	return &feedServiceImpl{
		postService:     postService,
		commentService:  commentService,
		likeService:     likeService,
		identityService: identityService,
	}
}

func (s *feedServiceImpl) SubmitPost(ctx context.Context, acct Account, text string, image []byte) (*dto.PostDTO, error) {
	if !acct.valid() {
		return nil, ErrUnauthenticated
	}
	return s.postService.CreatePost(ctx, acct.ID, acct.Email, text, image)
}

// ListFeed 信息流按发布时间倒序
func (s *feedServiceImpl) ListFeed(ctx context.Context) ([]*dto.FeedPostDTO, error) {
	posts, err := s.postService.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *feedServiceImpl) DeletePost(ctx context.Context, acct Account, postID string) (*dto.DeletePostResultDTO, error) {
	if !acct.valid() {
		return nil, ErrUnauthenticated
	}
	return s.postService.DeletePost(ctx, postID, acct.ID)
}

func (s *feedServiceImpl) AddComment(ctx context.Context, acct Account, postID, text string) (*dto.CommentDTO, error) {
	if !acct.valid() {
		return nil, ErrUnauthenticated
	}
	return s.commentService.AddComment(ctx, postID, acct.ID, acct.Email, text)
}

func (s *feedServiceImpl) ListComments(ctx context.Context, postID string) ([]*dto.CommentDTO, error) {
	return s.commentService.ListComments(ctx, postID)
}

func (s *feedServiceImpl) DeleteComment(ctx context.Context, acct Account, commentID string) error {
	if !acct.valid() {
		return ErrUnauthenticated
	}
	return s.commentService.DeleteComment(ctx, commentID, acct.ID)
}

func (s *feedServiceImpl) LikePost(ctx context.Context, acct Account, postID string) (*dto.LikeCountDTO, error) {
	if !acct.valid() {
		return nil, ErrUnauthenticated
	}
	count, err := s.likeService.AddLike(ctx, postID, acct.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeCountDTO{Message: "点赞成功", LikesCount: count}, nil
}

func (s *feedServiceImpl) UnlikePost(ctx context.Context, acct Account, postID string) (*dto.LikeCountDTO, error) {
	if !acct.valid() {
		return nil, ErrUnauthenticated
	}
	count, err := s.likeService.RemoveLike(ctx, postID, acct.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeCountDTO{Message: "已取消点赞", LikesCount: count}, nil
}

func (s *feedServiceImpl) GetLikeStatus(ctx context.Context, acct Account, postID string) (*dto.LikeStatusDTO, error) {
	if !acct.valid() {
		return nil, ErrUnauthenticated
	}
	return s.likeService.GetLikeStatus(ctx, postID, acct.ID)
}

func (s *feedServiceImpl) SetNickname(ctx context.Context, acct Account, nickname string) (*dto.UserProfileDTO, error) {
	if !acct.valid() {
		return nil, ErrUnauthenticated
	}
	return s.identityService.SetNickname(ctx, acct.ID, nickname, acct.Email)
}

func (s *feedServiceImpl) GetProfile(ctx context.Context, acct Account) (*dto.UserProfileDTO, error) {
	if !acct.valid() {
		return nil, ErrUnauthenticated
	}
	return s.identityService.GetProfile(ctx, acct.ID, acct.Email)
}
