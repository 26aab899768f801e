package service

import (
	"errors"
	"fmt"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

// 错误类别, 具体错误通过 %w 归属到某一类别
var (
	ErrValidation      = errors.New("参数错误")
	ErrNotFound        = errors.New("资源不存在")
	ErrForbidden       = errors.New("权限不足")
	ErrConflict        = errors.New("重复操作")
	ErrUnauthenticated = errors.New("未登录或凭据无效")
	ErrDependency      = errors.New("系统异常，请稍后重试")
)

var (
	ErrEmptyText         = fmt.Errorf("%w: 内容不能为空", ErrValidation)
	ErrInvalidImage      = fmt.Errorf("%w: 图片数据无效", ErrValidation)
	ErrEmptyNickname     = fmt.Errorf("%w: 昵称不能为空", ErrValidation)
	ErrPostNotFound      = fmt.Errorf("%w: 帖子不存在", ErrNotFound)
	ErrCommentNotFound   = fmt.Errorf("%w: 评论不存在", ErrNotFound)
	ErrLikeNotFound      = fmt.Errorf("%w: 尚未点赞", ErrNotFound)
	ErrNotPostAuthor     = fmt.Errorf("%w: 只能删除自己的帖子", ErrForbidden)
	ErrNotCommentAuthor  = fmt.Errorf("%w: 只能删除自己的评论", ErrForbidden)
	ErrAlreadyLiked      = fmt.Errorf("%w: 已经点过赞", ErrConflict)
	ErrPostBusy          = fmt.Errorf("%w: 帖子正在处理中，请稍后重试", ErrConflict)
	ErrExpiredCredential = fmt.Errorf("%w: 凭据已过期", ErrUnauthenticated)
	ErrPartialDelete     = fmt.Errorf("%w: 删除未全部完成，数据可能不一致", ErrDependency)
)

// ErrorKinds 类别到业务码的映射, 按顺序匹配
var ErrorKinds = []struct {
	Kind error
	Code int
}{
	{ErrValidation, BadRequest},
	{ErrUnauthenticated, Unauthorized},
	{ErrForbidden, Forbidden},
	{ErrNotFound, NotFound},
	{ErrConflict, Conflict},
	{ErrDependency, InternalServerError},
}

// CodeOf 返回错误对应的业务码, 未归类的错误按系统异常处理
func CodeOf(err error) int {
	for _, k := range ErrorKinds {
		if errors.Is(err, k.Kind) {
			return k.Code
		}
	}
	return InternalServerError
}

// PublicMessage 返回可以透出给调用方的错误信息, 依赖故障不暴露细节
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, ErrPartialDelete):
		return ErrPartialDelete.Error()
	case errors.Is(err, ErrDependency):
		return ErrDependency.Error()
	case CodeOf(err) == InternalServerError:
		return ErrDependency.Error()
	}
	return err.Error()
}

// dependency 将仓储或对象存储错误包装为依赖故障
func dependency(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrDependency, err)
}
