package service

import (
	"SocialMapp/internal/api/dto"
	"SocialMapp/internal/model"
	"SocialMapp/internal/pkg/util"
	"SocialMapp/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID, authorHandle, text string, image []byte) (*dto.PostDTO, error)
	GetPost(ctx context.Context, postID string) (*model.Post, error)
	DeletePost(ctx context.Context, postID, requesterID string) (*dto.DeletePostResultDTO, error)
	ListPosts(ctx context.Context) ([]*dto.FeedPostDTO, error)
}

type postServiceImpl struct {
	postRepo        repository.PostRepo
	commentService  CommentService
	likeService     LikeService
	identityService IdentityService
	blobStore       BlobStore
	locker          Locker
	now             func() time.Time
}

func NewPostService(postRepo repository.PostRepo, commentService CommentService, likeService LikeService,
	identityService IdentityService, blobStore BlobStore, locker Locker) PostService {
	return &postServiceImpl{
		postRepo:        postRepo,
		commentService:  commentService,
		likeService:     likeService,
		identityService: identityService,
		blobStore:       blobStore,
		locker:          locker,
		now:             time.Now,
	}
}

// CreatePost 先写图片再写帖子记录, 崩溃时最多留下孤儿图片
func (s *postServiceImpl) CreatePost(ctx context.Context, authorID, authorHandle, text string, image []byte) (*dto.PostDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	now := s.now()
	post := &model.Post{
		AuthorID:     authorID,
		AuthorHandle: authorHandle,
		Text:         text,
		CreatedAt:    now,
	}

	if len(image) > 0 {
		normalized, err := util.NormalizeImage(image)
		if err != nil {
			return nil, ErrInvalidImage
		}
		name := util.ImageObjectName(authorHandle, now)
		url, err := s.blobStore.Put(ctx, name, normalized, util.PNGContentType)
		if err != nil {
			return nil, dependency(err)
		}
		post.ImageRef = name
		post.ImageURL = url
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		if post.HasImage() {
			log.WarnContext(ctx, "post record not written, image left for orphan sweep", "image_ref", post.ImageRef, "err", err)
		}
		return nil, dependency(err)
	}

	out := &dto.PostDTO{}
	if err := copier.Copy(out, post); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, postID string) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, dependency(err)
	}
	return post, nil
}

// DeletePost 级联删除帖子, 非事务, 顺序如下:
// 1. 读取全部评论和点赞
// 2. 删除图片, 失败只记录告警
// 3. 并发删除评论, 点赞和帖子记录, 任一失败即返回 ErrPartialDelete, 不回滚
func (s *postServiceImpl) DeletePost(ctx context.Context, postID, requesterID string) (*dto.DeletePostResultDTO, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.IsAuthor(requesterID) {
		return nil, ErrNotPostAuthor
	}

	unlock, err := lockPost(ctx, s.locker, postID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var (
		comments []*model.Comment
		likes    []*model.Like
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var e error
		comments, e = s.commentService.ListForPost(gCtx, postID)
		return e
	})
	g.Go(func() error {
		var e error
		likes, e = s.likeService.ListForPost(gCtx, postID)
		return e
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	if post.HasImage() {
		if err = s.blobStore.Delete(ctx, post.ImageRef); err != nil {
			log.WarnContext(ctx, "delete post image failed", "post_id", postID, "image_ref", post.ImageRef, "err", err)
		}
	}

	g, gCtx = errgroup.WithContext(ctx)
	g.Go(func() error {
		_, e := s.commentService.DeleteAllForPost(gCtx, postID)
		return e
	})
	g.Go(func() error {
		_, e := s.likeService.DeleteAllForPost(gCtx, postID)
		return e
	})
	g.Go(func() error {
		if e := s.postRepo.DeletePost(gCtx, postID); e != nil {
			return dependency(e)
		}
		return nil
	})
	if err = g.Wait(); err != nil {
		log.ErrorContext(ctx, "cascade delete partially failed", "post_id", postID, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrPartialDelete, err)
	}

	return &dto.DeletePostResultDTO{
		Message:         "帖子已删除",
		DeletedComments: len(comments),
		DeletedLikes:    len(likes),
	}, nil
}

// ListPosts 返回全部帖子, 附带作者展示名和点赞数
func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*dto.FeedPostDTO, error) {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, dependency(err)
	}

	out := make([]*dto.FeedPostDTO, len(posts))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for i, post := range posts {
		g.Go(func() error {
			item := &dto.FeedPostDTO{}
			if e := copier.Copy(item, post); e != nil {
				return e
			}
			name, e := s.identityService.ResolveDisplayName(gCtx, post.AuthorID, post.AuthorHandle)
			if e != nil {
				return e
			}
			count, e := s.likeService.CountLikes(gCtx, post.ID)
			if e != nil {
				return e
			}
			item.DisplayName = name
			item.LikesCount = count
			out[i] = item
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
