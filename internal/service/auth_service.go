package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"photoblog/internal/config"
	"photoblog/internal/models"
	"photoblog/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// dummyHash is compared against when the username does not exist, so the
// unknown-user and wrong-password paths cost the same bcrypt work.
var dummyHash = func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("photoblog-dummy-password"), 10)
	return hash
}()

type TokenClaims struct {
	UserID   int64
	Username string
}

type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, string, error)
	ParseToken(tokenString string) (*TokenClaims, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.userRepo.CreateUser(ctx, username, string(hashedPassword))
	if err != nil {
		return err
	}

	return nil
}

// Login verifies the credentials and issues a signed token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, user.Username, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.cfg.TokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	// numeric claims come back as float64 from encoding/json
	id, ok := claims["id"].(float64)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return &TokenClaims{
		UserID:   int64(id),
		Username: username,
	}, nil
}
