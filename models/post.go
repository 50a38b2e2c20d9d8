package models

import (
	"time"
)

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"userId" gorm:"column:user_id"`
	Caption   string    `json:"caption"`
	URL       string    `json:"url" gorm:"column:url"`
	FileType  string    `json:"fileType" gorm:"column:file_type"`
	FileName  string    `json:"fileName" gorm:"column:file_name"`
	FileID    string    `json:"-" gorm:"column:file_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostFeedItem est un post décoré pour le feed (auteur, likes, propriété)
type PostFeedItem struct {
	Post
	UserName   string `json:"userName"`
	LikesCount int    `json:"likesCount"`
	IsLiked    bool   `json:"isLiked"`
	IsOwner    bool   `json:"isOwner"`
}

func (Post) TableName() string {
	return "posts"
}
