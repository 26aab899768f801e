package service

import (
	"SocialMapp/internal/api/dto"
	"SocialMapp/internal/model"
	"SocialMapp/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

// resolveConcurrency 展示名解析的并发上限
const resolveConcurrency = 8

type CommentService interface {
	AddComment(ctx context.Context, postID, accountID, accountHandle, text string) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, postID string) ([]*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, commentID, requesterID string) error
	ListForPost(ctx context.Context, postID string) ([]*model.Comment, error)
	DeleteAllForPost(ctx context.Context, postID string) (int64, error)
}

type commentServiceImpl struct {
	commentRepo     repository.CommentRepo
	postRepo        repository.PostRepo
	identityService IdentityService
	locker          Locker
	now             func() time.Time
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo, identityService IdentityService, locker Locker) CommentService {
	return &commentServiceImpl{
		commentRepo:     commentRepo,
		postRepo:        postRepo,
		identityService: identityService,
		locker:          locker,
		now:             time.Now,
	}
}

// AddComment 与帖子删除共用同一把帖子锁, 避免删除过程中插入孤儿评论
func (s *commentServiceImpl) AddComment(ctx context.Context, postID, accountID, accountHandle, text string) (*dto.CommentDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	unlock, err := lockPost(ctx, s.locker, postID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err = s.postRepo.GetPost(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, dependency(err)
	}

	comment := &model.Comment{
		PostID:       postID,
		AuthorID:     accountID,
		AuthorHandle: accountHandle,
		Text:         text,
		CreatedAt:    s.now(),
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, dependency(err)
	}

	out := &dto.CommentDTO{}
	if err = copier.Copy(out, comment); err != nil {
		return nil, err
	}
	// 评论已写入, 展示名解析失败时回退到邮箱
	displayName, rErr := s.identityService.ResolveDisplayName(ctx, accountID, accountHandle)
	if rErr != nil {
		log.WarnContext(ctx, "resolve display name failed", "comment_id", comment.ID, "account_id", accountID, "err", rErr)
		displayName = accountHandle
	}
	out.DisplayName = displayName
	return out, nil
}

// ListComments 按创建时间倒序返回, 附带作者展示名
func (s *commentServiceImpl) ListComments(ctx context.Context, postID string) ([]*dto.CommentDTO, error) {
	if _, err := s.postRepo.GetPost(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, dependency(err)
	}

	comments, err := s.commentRepo.ListByPostID(ctx, postID)
	if err != nil {
		return nil, dependency(err)
	}

	nicknames, err := s.resolveNicknames(ctx, comments)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		item := &dto.CommentDTO{}
		if err = copier.Copy(item, c); err != nil {
			return nil, err
		}
		item.DisplayName = c.AuthorHandle
		if nickname, ok := nicknames[c.AuthorID]; ok {
			item.DisplayName = nickname
		}
		out = append(out, item)
	}
	return out, nil
}

// resolveNicknames 每个作者只查询一次
func (s *commentServiceImpl) resolveNicknames(ctx context.Context, comments []*model.Comment) (map[string]string, error) {
	authors := make(map[string]struct{})
	for _, c := range comments {
		authors[c.AuthorID] = struct{}{}
	}

	var mu sync.Mutex
	nicknames := make(map[string]string, len(authors))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for authorID := range authors {
		g.Go(func() error {
			nickname, ok, err := s.identityService.ResolveNickname(gCtx, authorID)
			if err != nil {
				return err
			}
			if ok {
				mu.Lock()
				nicknames[authorID] = nickname
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nicknames, nil
}

// DeleteComment 只有评论作者可以删除
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID, requesterID string) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return dependency(err)
	}
	if !comment.IsAuthor(requesterID) {
		return ErrNotCommentAuthor
	}

	if err = s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		// 并发删除时另一方已经删掉
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return dependency(err)
	}
	return nil
}

func (s *commentServiceImpl) ListForPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	list, err := s.commentRepo.ListByPostID(ctx, postID)
	if err != nil {
		return nil, dependency(err)
	}
	return list, nil
}

// DeleteAllForPost 仅供帖子级联删除使用, 没有评论时返回 0
func (s *commentServiceImpl) DeleteAllForPost(ctx context.Context, postID string) (int64, error) {
	deleted, err := s.commentRepo.DeleteByPostID(ctx, postID)
	if err != nil {
		return 0, dependency(err)
	}
	return deleted, nil
}
