package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"movieclub-backend/internal/models"
	"movieclub-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidToken = errors.New("invalid or missing API token")

type UserService interface {
	// CreateUser registers username and returns the plain API token. Only
	// its hash is stored.
	CreateUser(ctx context.Context, username string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type userService struct {
	repo   repository.UserRepository
	logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) CreateUser(ctx context.Context, username string) (*models.User, string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, "", invalid("username", "this field is required")
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "") + strings.ReplaceAll(uuid.NewString(), "-", "")
	user := &models.User{
		Username: username,
		APIToken: hashToken(token),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", invalid("username", "user %q already exists", username)
		}
		return nil, "", err
	}

	s.logger.WithField("username", username).Info("User created")
	return user, token, nil
}

func (s *userService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}
	user, err := s.repo.FindByToken(ctx, hashToken(token))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
