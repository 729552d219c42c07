package helper

import (
	"errors"
	"time"

	"film_library/model"

	"gorm.io/gorm"
)

var (
	ErrEmailNotFound = errors.New("email not registered")
	ErrWrongPassword = errors.New("password mismatch")
)

func RegisterUser(db *gorm.DB, email, password string) (*model.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := model.User{Email: email, PasswordHash: hash}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser distinguishes an unknown email from a wrong password and
// stamps last_login on success.
func AuthenticateUser(db *gorm.DB, email, password string) (*model.User, error) {
	user, err := GetUserByEmail(db, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrEmailNotFound
	}
	if !CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}

	now := time.Now().UTC()
	if err := db.Model(user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now
	return user, nil
}

// ChangePassword requires the current password to verify before the hash
// is overwritten in place.
func ChangePassword(db *gorm.DB, user *model.User, oldPassword, newPassword string) error {
	if !CheckPasswordHash(oldPassword, user.PasswordHash) {
		return ErrWrongPassword
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := db.Model(user).Update("password_hash", hash).Error; err != nil {
		return err
	}
	user.PasswordHash = hash
	return nil
}
