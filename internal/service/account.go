package service

import (
	"casino-backend/internal/model"
	"casino-backend/internal/repository"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

type AccountServiceImpl struct {
	profileRepo repository.ProfileRepository
	logger      zerolog.Logger
}

func NewAccountService(profileRepo repository.ProfileRepository, logger zerolog.Logger) AccountService {
	return &AccountServiceImpl{profileRepo: profileRepo, logger: logger}
}

func (s *AccountServiceImpl) CheckUsername(ctx context.Context, username string) (*model.CheckUsernameResponse, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("%w: 3-20 letters, digits or underscores", model.ErrInvalidUsername)
	}

	exists, err := s.profileRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}

	return &model.CheckUsernameResponse{Exists: exists, IsAvailable: !exists}, nil
}
