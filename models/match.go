package models

import (
	"fmt"
	"time"
)

// Outcome represents the result of a match from the home team's perspective
type Outcome string

const (
	OutcomeHomeWin Outcome = "home-win"
	OutcomeDraw    Outcome = "draw"
	OutcomeAwayWin Outcome = "away-win"
)

// IsValid returns true if the outcome is one of the three known values
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeHomeWin, OutcomeDraw, OutcomeAwayWin:
		return true
	}
	return false
}

// DefaultPredictionCutoff is how long before kickoff predictions lock
const DefaultPredictionCutoff = 30 * time.Minute

// MatchStats holds per-aspect totals for a match, declared alongside the outcome
type MatchStats struct {
	Corners   int `json:"corners" bson:"corners"`
	Cards     int `json:"cards" bson:"cards"`
	Penalties int `json:"penalties" bson:"penalties"`
	FreeKicks int `json:"free_kicks" bson:"free_kicks"`
}

// MatchResult is the declared final result of a match.
// Stats is nil when only the outcome was recorded.
type MatchResult struct {
	Outcome Outcome     `json:"outcome" bson:"outcome"`
	Stats   *MatchStats `json:"stats,omitempty" bson:"stats,omitempty"`
}

// Match represents a fixture within a group, with predictions embedded per user.
// Keeping predictions inside the match document means finalization plus scoring
// is a single document update.
type Match struct {
	ID          string                `json:"id" bson:"_id"`
	GroupID     string                `json:"group_id" bson:"group_id"`
	JornadaID   string                `json:"jornada_id,omitempty" bson:"jornada_id,omitempty"`
	HomeTeam    string                `json:"home_team" bson:"home_team"`
	AwayTeam    string                `json:"away_team" bson:"away_team"`
	Date        time.Time             `json:"date" bson:"date"`
	Finished    bool                  `json:"finished" bson:"finished"`
	Result      *MatchResult          `json:"result,omitempty" bson:"result,omitempty"`
	Predictions map[string]Prediction `json:"predictions" bson:"predictions"`
	CreatedAt   time.Time             `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at" bson:"updated_at"`
}

// IsFinished returns true if the match has a declared result
func (m *Match) IsFinished() bool {
	return m.Finished && m.Result != nil
}

// InJornada returns true if the match belongs to the given jornada
func (m *Match) InJornada(jornadaID string) bool {
	return m.JornadaID == jornadaID
}

// PredictionsOpen reports whether predictions may still be created or changed.
// Predictions lock at the cutoff before kickoff and never reopen.
func (m *Match) PredictionsOpen(now time.Time, cutoff time.Duration) bool {
	if m.Finished {
		return false
	}
	return now.Before(m.Date.Add(-cutoff))
}

// Description returns a short "AWAY @ HOME" label for logs
func (m *Match) Description() string {
	return fmt.Sprintf("%s @ %s", m.AwayTeam, m.HomeTeam)
}
