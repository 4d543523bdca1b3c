package ir

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrBadPath  = errors.New("bad path")
)
