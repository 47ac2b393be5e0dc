package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/models"
	"github.com/dcode-github/property_listing_card/repository"
	"github.com/dcode-github/property_listing_card/utils"
)

const minPasswordLength = 8

type AuthService struct {
	users  repository.UserRepository
	tokens *utils.TokenIssuer
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens *utils.TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register stores a new account. The password is hashed before it is saved.
func (s *AuthService) Register(ctx context.Context, userID, email, password string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: userID", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password", ErrInvalidInput)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{UserID: userID, Email: email, Password: hashed}
	if err := s.users.Create(ctx, &user); err != nil {
		return err
	}
	s.logger.Info("User registered", zap.String("userID", userID))
	return nil
}

// Login checks the credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, userID, password string) (string, error) {
	user, err := s.users.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateJWT(user.UserID)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
