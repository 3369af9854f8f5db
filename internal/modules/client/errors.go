package client

import "errors"

var (
	ErrValidation = errors.New("invalid client data")
	ErrNotFound   = errors.New("client not found")
	ErrDuplicate  = errors.New("client with this email already exists")
)
