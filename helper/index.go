package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"film_library/config"
	"film_library/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenKindAccess = "access"

// ErrInvalidToken covers bad signature, expiry and wrong token kind alike;
// callers never learn which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GenerateAccessToken(cfg *config.Config, email string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = email
	claims["kind"] = tokenKindAccess
	claims["exp"] = time.Now().Add(time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute).Unix()

	return token.SignedString([]byte(cfg.JWTSecret))
}

func ParseToken(cfg *config.Config, tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
}

// SubjectFromToken verifies the token and returns the email it was issued
// for. A token of any other kind than "access" is rejected even if its
// signature verifies.
func SubjectFromToken(cfg *config.Config, tokenString string) (string, error) {
	token, err := ParseToken(cfg, tokenString)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if kind, _ := claims["kind"].(string); kind != tokenKindAccess {
		return "", ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// TokenFromRequest reads the access token cookie, falling back to an
// Authorization: Bearer header.
func TokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

func GetUserByEmail(db *gorm.DB, email string) (*model.User, error) {
	var user model.User
	if err := db.Where(&model.User{Email: email}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ResolveUser turns the request's token into a user, or nil for guests.
// Any failure along the way degrades to nil, it never raises.
func ResolveUser(c *fiber.Ctx, db *gorm.DB, cfg *config.Config) *model.User {
	tokenString := TokenFromRequest(c)
	if tokenString == "" {
		return nil
	}
	email, err := SubjectFromToken(cfg, tokenString)
	if err != nil {
		return nil
	}
	user, err := GetUserByEmail(db, email)
	if err != nil {
		return nil
	}
	return user
}
