package models

import (
	"time"
)

type CommentLike struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CommentID string    `json:"commentId" gorm:"column:comment_id;uniqueIndex:idx_comment_likes_comment_user"`
	UserID    string    `json:"userId" gorm:"column:user_id;uniqueIndex:idx_comment_likes_comment_user"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
