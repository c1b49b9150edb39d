package service

import "errors"

var (
	ErrUserNotFound = errors.New("user.not_found")
	ErrEmailTaken   = errors.New("user.email_taken")
)
