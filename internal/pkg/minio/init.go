package minio

import (
	"SocialMapp/internal/api/config"
	"SocialMapp/internal/pkg/blob"
	"bytes"
	"context"
	"fmt"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const publicReadPolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`

// Store 基于 MinIO 的图片存储
type Store struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

var _ blob.Store = (*Store)(nil)

// NewStore 初始化 MinIO 客户端, 内网地址优先, 桶不存在时自动创建并开放只读
func NewStore(ctx context.Context, cfg config.MinIOConfig) (*Store, error) {
	var endpoint string
	var useSSL bool
	if cfg.InternalEndpoint != "" {
		endpoint = cfg.InternalEndpoint
		useSSL = cfg.InternalUseSSL
	} else {
		endpoint = cfg.ExternalEndpoint
		useSSL = true
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		if err = client.SetBucketPolicy(ctx, cfg.Bucket, fmt.Sprintf(publicReadPolicy, cfg.Bucket)); err != nil {
			return nil, fmt.Errorf("failed to set bucket policy: %w", err)
		}
		log.Info("minio bucket created", "bucket", cfg.Bucket)
	}

	// 对外地址用于拼接公开链接
	external := cfg.ExternalEndpoint
	externalSSL := true
	if external == "" {
		external = endpoint
		externalSSL = useSSL
	}

	return &Store{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: external,
		useSSL:   externalSSL,
	}, nil
}

// Put 上传对象并返回公开地址
func (s *Store) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return s.PublicURL(name), nil
}

// Delete 删除对象, 对象不存在时 MinIO 同样返回成功
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]blob.Object, error) {
	var out []blob.Object
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", info.Err)
		}
		out = append(out, blob.Object{Name: info.Key, LastModified: info.LastModified})
	}
	return out, nil
}

// PublicURL 获取对象的公共访问地址
func (s *Store) PublicURL(name string) string {
	return PublicURL(s.endpoint, s.useSSL, s.bucket, name)
}

func PublicURL(endpoint string, useSSL bool, bucket, name string) string {
	protocol := "http"
	if useSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, bucket, name)
}
