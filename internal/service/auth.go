package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/WhyTonyGit/SmartCook/internal/models"
	"github.com/WhyTonyGit/SmartCook/internal/types"
)

const tokenTTL = 24 * time.Hour

// AuthService manages consumer accounts and access tokens.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

// Register creates a consumer account and returns an access token.
func (s *AuthService) Register(ctx context.Context, username, email, phone, password string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return "", validation("username", "username is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", validation("email", "a valid email is required")
	}
	if len(password) < 6 {
		return "", validation("password", "password must be at least 6 characters")
	}

	var existing models.Consumer
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	consumer := models.Consumer{
		Username:     username,
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.db.WithContext(ctx).Create(&consumer).Error; err != nil {
		return "", err
	}

	return s.generateToken(&consumer)
}

// Login checks credentials and returns an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var consumer models.Consumer
	if err := s.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&consumer).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(consumer.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(&consumer)
}

// ValidateToken parses and verifies an access token.
func (s *AuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetConsumer loads a consumer with their forbidden ingredients.
func (s *AuthService) GetConsumer(ctx context.Context, id uint) (*models.Consumer, error) {
	var consumer models.Consumer
	if err := s.db.WithContext(ctx).Preload("ForbiddenIngredients").First(&consumer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &consumer, nil
}

func (s *AuthService) generateToken(consumer *models.Consumer) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		ConsumerID: consumer.ID,
		Username:   consumer.Username,
		Role:       consumer.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
