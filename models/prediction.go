package models

import "time"

// PredictionStats holds a user's per-aspect forecasts for a match.
// Optional: outcome-only predictions leave it nil.
type PredictionStats struct {
	Corners   int `json:"corners" bson:"corners"`
	Cards     int `json:"cards" bson:"cards"`
	Penalties int `json:"penalties" bson:"penalties"`
	FreeKicks int `json:"free_kicks" bson:"free_kicks"`
}

// Prediction is a user's forecast for one match. Points and Breakdown are set
// once the owning match is finalized, after which the prediction is read-only.
type Prediction struct {
	UserID    string           `json:"user_id" bson:"user_id"`
	Outcome   Outcome          `json:"outcome" bson:"outcome"`
	Stats     *PredictionStats `json:"stats,omitempty" bson:"stats,omitempty"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
	Points    *int             `json:"points,omitempty" bson:"points,omitempty"`
	Breakdown *ScoreBreakdown  `json:"breakdown,omitempty" bson:"breakdown,omitempty"`
}

// IsScored returns true once the prediction carries a point value
func (p *Prediction) IsScored() bool {
	return p.Points != nil
}

// ScoringConfig is the point schedule used by the scoring engine. It is
// injected at call time, never a mutable global, so tests can substitute
// alternate point values.
type ScoringConfig struct {
	OutcomePoints  int `json:"outcome_points"`
	CornerPoints   int `json:"corner_points"`
	CardPoints     int `json:"card_points"`
	PenaltyPoints  int `json:"penalty_points"`
	FreeKickPoints int `json:"free_kick_points"`
}

// DefaultScoringConfig returns the production point schedule:
// one point per correct outcome and per correct aspect total.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		OutcomePoints:  1,
		CornerPoints:   1,
		CardPoints:     1,
		PenaltyPoints:  1,
		FreeKickPoints: 1,
	}
}

// ScoreBreakdown decomposes a prediction's awarded points by contributing
// factor. Aspect fields stay zero unless the declared result included stats
// and the prediction forecast them.
type ScoreBreakdown struct {
	Result    int `json:"result" bson:"result"`
	Corners   int `json:"corners" bson:"corners"`
	Cards     int `json:"cards" bson:"cards"`
	Penalties int `json:"penalties" bson:"penalties"`
	FreeKicks int `json:"free_kicks" bson:"free_kicks"`
	Total     int `json:"total" bson:"total"`
}

// HitOutcome returns true if the predicted outcome matched the declared one
func (b *ScoreBreakdown) HitOutcome() bool {
	return b.Result > 0
}

// IsPerfect returns true when every tracked factor scored: correct outcome
// plus every aspect. Only reachable on matches that declared full stats.
func (b *ScoreBreakdown) IsPerfect() bool {
	return b.Result > 0 && b.Corners > 0 && b.Cards > 0 && b.Penalties > 0 && b.FreeKicks > 0
}

// ScorePrediction compares a prediction against a declared match result and
// produces a point breakdown. Pure and deterministic: rescoring a match with
// the same result and config always yields identical breakdowns, so rescore
// is safe to re-run over every prediction.
//
// Callers must only invoke this with a finalized result; the engine does not
// gate on match state.
func ScorePrediction(pred Prediction, result MatchResult, cfg ScoringConfig) ScoreBreakdown {
	var b ScoreBreakdown

	if pred.Outcome == result.Outcome {
		b.Result = cfg.OutcomePoints
	}

	// Aspect scoring only applies when both sides recorded stats
	if result.Stats != nil && pred.Stats != nil {
		if pred.Stats.Corners == result.Stats.Corners {
			b.Corners = cfg.CornerPoints
		}
		if pred.Stats.Cards == result.Stats.Cards {
			b.Cards = cfg.CardPoints
		}
		if pred.Stats.Penalties == result.Stats.Penalties {
			b.Penalties = cfg.PenaltyPoints
		}
		if pred.Stats.FreeKicks == result.Stats.FreeKicks {
			b.FreeKicks = cfg.FreeKickPoints
		}
	}

	b.Total = b.Result + b.Corners + b.Cards + b.Penalties + b.FreeKicks
	return b
}
