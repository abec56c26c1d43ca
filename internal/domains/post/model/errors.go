package model

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
)
