package models

import (
	"database/sql"
	"time"
)

// User représente un utilisateur dans la base de données
type User struct {
	ID               string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email            string       `json:"email" binding:"required,email" gorm:"uniqueIndex"`
	Password         string       `json:"-"`
	UserName         string       `json:"userName" gorm:"column:user_name"`
	Bio              string       `json:"bio"`
	ProfilePicture   string       `json:"profilePicture" gorm:"column:profile_picture"`
	Enable           bool         `json:"enable" gorm:"default:true"`
	VerificationCode string       `json:"-" gorm:"column:verification_code"`
	EmailVerifiedAt  sql.NullTime `json:"emailVerifiedAt"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

type UserCreate struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UserUpdate struct {
	UserName string `json:"userName"`
	Bio      string `json:"bio"`
}

func (User) TableName() string {
	return "users"
}
