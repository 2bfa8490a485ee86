package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrPostNotFound     = errors.New("帖子不存在")
	ErrContentRequired  = errors.New("正文不能为空")
	ErrNoScheduledPosts = errors.New("没有可导出的待发布帖子")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrPostNotFound:     NotFound,
	ErrContentRequired:  BadRequest,
	ErrNoScheduledPosts: NotFound,
	UnExpectedError:     InternalServerError,
}
