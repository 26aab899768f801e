// Package blob 定义图片对象存储的公共契约, 由 minio 和 gcs 两个后端实现
package blob

import (
	"context"
	"time"
)

// Object 对象元信息, 供孤儿图片清理使用
type Object struct {
	Name         string
	LastModified time.Time
}

// Store 对象存储, Put 返回可公开访问的地址, Delete 对不存在的对象不报错
type Store interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]Object, error)
}
