package model

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin"`
}

type RegisterInput struct {
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" form:"confirm_password" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type ChangePasswordInput struct {
	OldPassword     string `json:"oldPassword" form:"old_password" validate:"required"`
	NewPassword     string `json:"newPassword" form:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" form:"confirm_password" validate:"required"`
}

type UserResponse struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
}
