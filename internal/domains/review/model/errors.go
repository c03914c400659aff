package model

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrAlreadyReviewed = errors.New("you have already reviewed this title")
	ErrNotOwner        = errors.New("you can only modify your own content")
)
