package service

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProfileRequired     = errors.New("please complete your brand profile first")
	ErrInvalidProfile      = errors.New("invalid profile")
	ErrContentNotFound     = errors.New("content not found")
	ErrNoContent           = errors.New("no content generated yet")
	ErrAccountNotFound     = errors.New("account not found")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrInvalidImage        = errors.New("invalid image")
	ErrInvalidState        = errors.New("invalid oauth state")
	ErrOAuthConfig         = errors.New("oauth configuration is incomplete")
)
