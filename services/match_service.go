package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prode-go/logging"
	"prode-go/models"

	"github.com/google/uuid"
)

// MatchService handles match administration
type MatchService struct {
	matchRepo MatchRepository
	groupRepo GroupRepository
	logger    *logging.Logger
}

// NewMatchService creates a new match service
func NewMatchService(matchRepo MatchRepository, groupRepo GroupRepository) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		groupRepo: groupRepo,
		logger:    logging.WithPrefix("MatchService"),
	}
}

// CreateMatch creates a fixture in a group, optionally assigned to a jornada
func (s *MatchService) CreateMatch(ctx context.Context, groupID, jornadaID, homeTeam, awayTeam string, date time.Time) (*models.Match, error) {
	if homeTeam == "" || awayTeam == "" {
		return nil, errors.New("home and away teams are required")
	}
	if homeTeam == awayTeam {
		return nil, errors.New("a team cannot play itself")
	}

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if jornadaID != "" && group.FindJornada(jornadaID) == nil {
		return nil, ErrJornadaNotFound
	}

	match := &models.Match{
		ID:          uuid.NewString(),
		GroupID:     groupID,
		JornadaID:   jornadaID,
		HomeTeam:    homeTeam,
		AwayTeam:    awayTeam,
		Date:        date,
		Predictions: make(map[string]models.Prediction),
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	s.logger.Infof("Created match %s (%s) in group %s", match.Description(), match.ID, groupID)
	return match, nil
}

// GetMatch retrieves a single match
func (s *MatchService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	return s.matchRepo.GetByID(ctx, matchID)
}

// GetGroupMatches lists a group's matches sorted by kickoff, restricted to
// members.
func (s *MatchService) GetGroupMatches(ctx context.Context, groupID, userID string) ([]models.Match, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(userID) {
		return nil, ErrNotGroupMember
	}

	return s.matchRepo.FindByGroup(ctx, groupID)
}

// DeleteMatch removes a match administratively
func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return err
	}

	s.logger.Infof("Deleted match %s", matchID)
	return nil
}
