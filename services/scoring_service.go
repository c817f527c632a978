package services

import (
	"context"
	"fmt"

	"prode-go/logging"
	"prode-go/models"
)

// ScoringService scores predictions when a match result is declared. The
// scoring engine itself (models.ScorePrediction) is pure; this service owns
// the finished-match gate and the atomic write-back.
type ScoringService struct {
	matchRepo MatchRepository
	config    models.ScoringConfig
	logger    *logging.Logger
}

// NewScoringService creates a new scoring service
func NewScoringService(matchRepo MatchRepository, config models.ScoringConfig) *ScoringService {
	return &ScoringService{
		matchRepo: matchRepo,
		config:    config,
		logger:    logging.WithPrefix("ScoringService"),
	}
}

// FinalizeMatch declares a match result and scores every submitted
// prediction. Declaration happens exactly once; a repeated call fails with
// ErrAlreadyFinalized. Result write and prediction scores land in one
// conditional document update, so concurrent finalizations cannot drop
// scores.
func (s *ScoringService) FinalizeMatch(ctx context.Context, matchID string, result models.MatchResult) (*models.Match, error) {
	if result.Outcome == "" {
		return nil, ErrOutcomeRequired
	}
	if !result.Outcome.IsValid() {
		return nil, ErrInvalidOutcome
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Finished {
		return nil, ErrAlreadyFinalized
	}

	scored := s.scorePredictions(match.Predictions, result)

	updated, err := s.matchRepo.Finalize(ctx, matchID, result, scored)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize match %s: %w", matchID, err)
	}

	s.logger.Infof("Finalized match %s (%s): outcome=%s, scored %d predictions",
		match.Description(), matchID, result.Outcome, len(scored))
	return updated, nil
}

// RescoreMatch recomputes every prediction score of a finished match. Used
// after correcting a misentered result; passing nil keeps the stored result.
// Scoring is deterministic, so rescoring with an unchanged result is a no-op
// on point values.
func (s *ScoringService) RescoreMatch(ctx context.Context, matchID string, result *models.MatchResult) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.IsFinished() {
		return nil, ErrMatchNotFinished
	}

	effective := *match.Result
	if result != nil {
		if !result.Outcome.IsValid() {
			return nil, ErrInvalidOutcome
		}
		effective = *result
	}

	scored := s.scorePredictions(match.Predictions, effective)

	if err := s.matchRepo.ReplaceScores(ctx, matchID, effective, scored); err != nil {
		return nil, fmt.Errorf("failed to rescore match %s: %w", matchID, err)
	}

	match.Result = &effective
	match.Predictions = scored

	s.logger.Infof("Rescored match %s: outcome=%s, %d predictions", matchID, effective.Outcome, len(scored))
	return match, nil
}

func (s *ScoringService) scorePredictions(preds map[string]models.Prediction, result models.MatchResult) map[string]models.Prediction {
	scored := make(map[string]models.Prediction, len(preds))
	for userID, pred := range preds {
		breakdown := models.ScorePrediction(pred, result, s.config)
		points := breakdown.Total
		pred.Points = &points
		pred.Breakdown = &breakdown
		scored[userID] = pred
	}
	return scored
}
