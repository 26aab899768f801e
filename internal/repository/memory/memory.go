// Package memory 提供进程内的仓储实现, 用于测试和本地调试
package memory

import (
	"SocialMapp/internal/model"
	"SocialMapp/internal/repository"
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store 聚合四个集合, 各集合独立加锁, 与文档库的单记录原子性一致
type Store struct {
	Posts    *PostRepo
	Comments *CommentRepo
	Likes    *LikeRepo
	Users    *UserProfileRepo
}

func New() *Store {
	return &Store{
		Posts:    &PostRepo{items: make(map[string]model.Post)},
		Comments: &CommentRepo{items: make(map[string]model.Comment)},
		Likes:    &LikeRepo{items: make(map[string]model.Like)},
		Users:    &UserProfileRepo{items: make(map[string]model.UserProfile)},
	}
}

type PostRepo struct {
	mu    sync.RWMutex
	items map[string]model.Post
}

var _ repository.PostRepo = (*PostRepo)(nil)

func (s *PostRepo) CreatePost(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if post.ID == "" {
		post.ID = primitive.NewObjectID().Hex()
	}
	if _, ok := s.items[post.ID]; ok {
		return repository.ErrDuplicate
	}
	s.items[post.ID] = *post
	return nil
}

func (s *PostRepo) GetPost(_ context.Context, postID string) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.items[postID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &post, nil
}

func (s *PostRepo) ListPosts(_ context.Context) ([]*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*model.Post, 0, len(s.items))
	for _, p := range s.items {
		post := p
		list = append(list, &post)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (s *PostRepo) DeletePost(_ context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, postID)
	return nil
}

func (s *PostRepo) ListImageRefs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	refs := make([]string, 0)
	for _, p := range s.items {
		if p.ImageRef != "" {
			refs = append(refs, p.ImageRef)
		}
	}
	return refs, nil
}

type CommentRepo struct {
	mu    sync.RWMutex
	items map[string]model.Comment
}

var _ repository.CommentRepo = (*CommentRepo)(nil)

func (s *CommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if comment.ID == "" {
		comment.ID = primitive.NewObjectID().Hex()
	}
	if _, ok := s.items[comment.ID]; ok {
		return repository.ErrDuplicate
	}
	s.items[comment.ID] = *comment
	return nil
}

func (s *CommentRepo) GetComment(_ context.Context, commentID string) (*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comment, ok := s.items[commentID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &comment, nil
}

func (s *CommentRepo) ListByPostID(_ context.Context, postID string) ([]*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*model.Comment, 0)
	for _, c := range s.items {
		if c.PostID == postID {
			comment := c
			list = append(list, &comment)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (s *CommentRepo) DeleteComment(_ context.Context, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[commentID]; !ok {
		return repository.ErrNotFound
	}
	delete(s.items, commentID)
	return nil
}

func (s *CommentRepo) DeleteByPostID(_ context.Context, postID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for id, c := range s.items {
		if c.PostID == postID {
			delete(s.items, id)
			deleted++
		}
	}
	return deleted, nil
}

type LikeRepo struct {
	mu    sync.RWMutex
	items map[string]model.Like
}

var _ repository.LikeRepo = (*LikeRepo)(nil)

// CreateLike 与 Mongo 实现一致, 组合主键冲突即视为重复
func (s *LikeRepo) CreateLike(_ context.Context, like *model.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if like.Key == "" {
		like.Key = model.LikeKey(like.PostID, like.AuthorID)
	}
	if _, ok := s.items[like.Key]; ok {
		return repository.ErrDuplicate
	}
	s.items[like.Key] = *like
	return nil
}

func (s *LikeRepo) DeleteLike(_ context.Context, postID, authorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := model.LikeKey(postID, authorID)
	if _, ok := s.items[key]; !ok {
		return repository.ErrNotFound
	}
	delete(s.items, key)
	return nil
}

func (s *LikeRepo) ExistsLike(_ context.Context, postID, authorID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[model.LikeKey(postID, authorID)]
	return ok, nil
}

func (s *LikeRepo) CountByPostID(_ context.Context, postID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, l := range s.items {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (s *LikeRepo) ListByPostID(_ context.Context, postID string) ([]*model.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*model.Like, 0)
	for _, l := range s.items {
		if l.PostID == postID {
			like := l
			list = append(list, &like)
		}
	}
	return list, nil
}

func (s *LikeRepo) DeleteByPostID(_ context.Context, postID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for key, l := range s.items {
		if l.PostID == postID {
			delete(s.items, key)
			deleted++
		}
	}
	return deleted, nil
}

type UserProfileRepo struct {
	mu    sync.RWMutex
	items map[string]model.UserProfile
}

var _ repository.UserProfileRepo = (*UserProfileRepo)(nil)

func (s *UserProfileRepo) GetProfile(_ context.Context, accountID string) (*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.items[accountID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &profile, nil
}

func (s *UserProfileRepo) UpsertNickname(_ context.Context, accountID, nickname, email string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile := s.items[accountID]
	profile.AccountID = accountID
	profile.Nickname = nickname
	profile.Email = email
	profile.UpdatedAt = updatedAt
	s.items[accountID] = profile
	return nil
}
