package services

import (
	"context"

	"prode-go/models"
)

// StatisticsService aggregates scored predictions into per-user statistics
// for a scope (all of a group's finished matches, or one jornada's).
type StatisticsService struct {
	matchRepo MatchRepository
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(matchRepo MatchRepository) *StatisticsService {
	return &StatisticsService{matchRepo: matchRepo}
}

// GetUserStatistics computes a user's statistics over a group's finished
// matches. jornadaID narrows the scope to one jornada when non-empty.
func (s *StatisticsService) GetUserStatistics(ctx context.Context, groupID, jornadaID, userID string) (models.UserStatistics, error) {
	matches, err := s.matchRepo.FindFinishedByGroup(ctx, groupID)
	if err != nil {
		return models.UserStatistics{}, err
	}

	matches = filterJornada(matches, jornadaID)
	return models.ComputeUserStatistics(userID, collectPredictions(matches, userID)), nil
}

// filterJornada narrows matches to one jornada; an empty ID keeps everything
func filterJornada(matches []models.Match, jornadaID string) []models.Match {
	if jornadaID == "" {
		return matches
	}

	filtered := matches[:0:0]
	for _, m := range matches {
		if m.InJornada(jornadaID) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// collectPredictions extracts one user's predictions from a match list,
// preserving the matches' kickoff order. That order is the aggregator's
// precondition for streak computation.
func collectPredictions(matches []models.Match, userID string) []models.Prediction {
	var preds []models.Prediction
	for _, m := range matches {
		if p, ok := m.Predictions[userID]; ok {
			preds = append(preds, p)
		}
	}
	return preds
}
