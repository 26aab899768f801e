// Package gcs 基于 Google Cloud Storage 的图片存储
package gcs

import (
	"SocialMapp/internal/api/config"
	"SocialMapp/internal/pkg/blob"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type Store struct {
	client *storage.Client
	bucket string
}

var _ blob.Store = (*Store)(nil)

// NewStore 凭据文件为空时使用 ADC
func NewStore(ctx context.Context, cfg config.GCSConfig) (*Store, error) {
	var (
		client *storage.Client
		err    error
	)
	if cfg.CredentialsFile == "" {
		client, err = storage.NewClient(ctx)
	} else {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gcs client: %w", err)
	}
	return &Store{client: client, bucket: cfg.Bucket}, nil
}

func (s *Store) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	wc := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // 图片较小, 关闭分块上传
	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return PublicURL(s.bucket, name), nil
}

// Delete 对象不存在视为成功
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.client.Bucket(s.bucket).Object(name).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]blob.Object, error) {
	var out []blob.Object
	it := s.client.Bucket(s.bucket).Objects(ctx, nil)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		out = append(out, blob.Object{Name: attrs.Name, LastModified: attrs.Updated})
	}
	return out, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// PublicURL 假定桶已开放公共读
func PublicURL(bucket, name string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, name)
}
