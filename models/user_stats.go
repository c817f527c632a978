package models

import "math"

// UserStatistics aggregates a user's scored predictions within a scope
// (a group's matches or one jornada). Derived on read, never stored.
type UserStatistics struct {
	UserID           string  `json:"user_id"`
	TotalPoints      int     `json:"total_points"`
	TotalPredictions int     `json:"total_predictions"`
	ExactHits        int     `json:"exact_hits"`
	PartialHits      int     `json:"partial_hits"`
	CurrentStreak    int     `json:"current_streak"`
	LongestStreak    int     `json:"longest_streak"`
	AveragePoints    float64 `json:"average_points"`
}

// DisplayAverage rounds the average to one decimal for presentation.
// Ranking tie-breaks use the full-precision AveragePoints.
func (s *UserStatistics) DisplayAverage() float64 {
	return math.Round(s.AveragePoints*10) / 10
}

// ComputeUserStatistics folds a user's predictions into a UserStatistics
// record. Unscored predictions are skipped.
//
// Precondition: preds must be ordered by match kickoff ascending, so that the
// running streak at the end of the walk is the current streak over the most
// recent matches. Callers sort by match date before invoking.
//
// Never errors: an empty or fully-unscored input yields all-zero statistics.
func ComputeUserStatistics(userID string, preds []Prediction) UserStatistics {
	stats := UserStatistics{UserID: userID}

	streak := 0
	for _, p := range preds {
		if !p.IsScored() {
			continue
		}

		stats.TotalPredictions++
		stats.TotalPoints += *p.Points

		if p.Breakdown != nil && p.Breakdown.HitOutcome() {
			stats.ExactHits++
		}

		if *p.Points > 0 {
			stats.PartialHits++
			streak++
			if streak > stats.LongestStreak {
				stats.LongestStreak = streak
			}
		} else {
			streak = 0
		}
	}

	stats.CurrentStreak = streak
	if stats.TotalPredictions > 0 {
		stats.AveragePoints = float64(stats.TotalPoints) / float64(stats.TotalPredictions)
	}

	return stats
}
