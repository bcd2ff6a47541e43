package service

import (
	"casino-backend/internal/metrics"
	"casino-backend/internal/model"
	"casino-backend/internal/repository"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultGamePageSize = 50
	maxGamePageSize     = 200
)

type GameServiceImpl struct {
	profileRepo repository.ProfileRepository
	gameRepo    repository.GameRepository
	launcher    GameLauncher
	cache       GameCache
	logger      zerolog.Logger
}

func NewGameService(
	profileRepo repository.ProfileRepository,
	gameRepo repository.GameRepository,
	launcher GameLauncher,
	cache GameCache,
	logger zerolog.Logger,
) GameService {
	return &GameServiceImpl{
		profileRepo: profileRepo,
		gameRepo:    gameRepo,
		launcher:    launcher,
		cache:       cache,
		logger:      logger,
	}
}

// Login launches a game for the caller; the requested username must be the caller's own.
func (s *GameServiceImpl) Login(ctx context.Context, userID uuid.UUID, req *model.GameLoginRequest, userAgent string) (*model.GameLoginResponse, error) {
	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if !strings.EqualFold(strings.TrimSpace(req.Username), profile.Username) {
		return nil, fmt.Errorf("%w: username does not belong to caller", model.ErrForbidden)
	}

	gameURL, err := s.launcher.Login(ctx, profile.Username, req.GPID, req.IsSports, userAgent)
	if err != nil {
		metrics.RecordGameLogin("failed")
		s.logger.Error().Err(err).Str("user_id", userID.String()).Int("gpid", req.GPID).Msg("game provider login failed")
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}

	metrics.RecordGameLogin("success")
	return &model.GameLoginResponse{Success: true, GameURL: gameURL}, nil
}

func (s *GameServiceImpl) ListGames(ctx context.Context, filter model.GameFilter) (*model.GameListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultGamePageSize
	}
	if filter.Limit > maxGamePageSize {
		filter.Limit = maxGamePageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, filter)
		if err != nil {
			s.logger.Warn().Err(err).Msg("game cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	games, total, err := s.gameRepo.ListActiveGames(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	resp := &model.GameListResponse{Games: games, Total: total, Limit: filter.Limit, Offset: filter.Offset}

	if s.cache != nil {
		if err := s.cache.Set(ctx, filter, resp); err != nil {
			s.logger.Warn().Err(err).Msg("game cache write failed")
		}
	}

	return resp, nil
}
