package services

import (
	"context"
	"time"

	"prode-go/logging"
	"prode-go/models"
)

// PredictionService handles prediction submission with the cutoff gate
type PredictionService struct {
	matchRepo MatchRepository
	groupRepo GroupRepository
	cutoff    time.Duration
	logger    *logging.Logger
}

// NewPredictionService creates a new prediction service. cutoff is how long
// before kickoff predictions lock.
func NewPredictionService(matchRepo MatchRepository, groupRepo GroupRepository, cutoff time.Duration) *PredictionService {
	return &PredictionService{
		matchRepo: matchRepo,
		groupRepo: groupRepo,
		cutoff:    cutoff,
		logger:    logging.WithPrefix("PredictionService"),
	}
}

// SubmitPrediction creates or replaces the user's prediction for a match.
// At most one prediction exists per (match, user); resubmitting before the
// cutoff overwrites the previous forecast and stamps UpdatedAt.
func (s *PredictionService) SubmitPrediction(ctx context.Context, matchID, userID string, outcome models.Outcome, stats *models.PredictionStats) (*models.Prediction, error) {
	if !outcome.IsValid() {
		return nil, ErrInvalidOutcome
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetByID(ctx, match.GroupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(userID) {
		return nil, ErrNotGroupMember
	}

	now := time.Now()
	if !match.PredictionsOpen(now, s.cutoff) {
		return nil, ErrPredictionsLocked
	}

	pred := models.Prediction{
		UserID:    userID,
		Outcome:   outcome,
		Stats:     stats,
		CreatedAt: now,
	}
	if existing, ok := match.Predictions[userID]; ok {
		pred.CreatedAt = existing.CreatedAt
		pred.UpdatedAt = &now
	}

	if err := s.matchRepo.UpsertPrediction(ctx, matchID, pred); err != nil {
		return nil, err
	}

	s.logger.Debugf("User %s predicted %s on match %s", userID, outcome, matchID)
	return &pred, nil
}
