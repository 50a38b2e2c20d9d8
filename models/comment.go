package models

import (
	"time"
)

type Comment struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID    string     `json:"postId" gorm:"column:post_id;index"`
	UserID    string     `json:"userId" gorm:"column:user_id"`
	ParentID  *string    `json:"parentId" gorm:"column:parent_id;type:uuid"`
	Content   string     `json:"content" binding:"required"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

type CommentCreate struct {
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parentId"`
}

type CommentUpdate struct {
	Content string `json:"content" binding:"required"`
}

func (Comment) TableName() string {
	return "comments"
}
