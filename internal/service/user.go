package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/contact"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports"
)

// Registration is a new organizer account with its first access token.
type Registration struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

type UserService struct {
	repo   ports.UserRepo
	tokens ports.TokenIssuer
}

func NewUserService(repo ports.UserRepo, tokens ports.TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, input domain.CreateUserInput) (*Registration, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	email := contact.NormalizeEmail(input.Email)
	if !contact.ValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email %q", domain.ErrValidation, input.Email)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          email,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, expires, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &Registration{User: user, Token: token, ExpiresAt: expires}, nil
}

func (s *UserService) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	if actor.Anonymous() {
		return nil, fmt.Errorf("%w: sign in required", domain.ErrForbidden)
	}
	return s.repo.GetByID(ctx, actor.UserID)
}
