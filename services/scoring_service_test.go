package services

import (
	"context"
	"testing"
	"time"

	"prode-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatch(id, groupID string, preds map[string]models.Prediction) *models.Match {
	return &models.Match{
		ID:          id,
		GroupID:     groupID,
		HomeTeam:    "River",
		AwayTeam:    "Boca",
		Date:        time.Now().Add(48 * time.Hour),
		Predictions: preds,
	}
}

func TestFinalizeMatch_ScoresEveryPrediction(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMatchRepo(testMatch("m1", "g1", map[string]models.Prediction{
		"winner": {UserID: "winner", Outcome: models.OutcomeHomeWin},
		"loser":  {UserID: "loser", Outcome: models.OutcomeDraw},
	}))
	svc := NewScoringService(repo, models.DefaultScoringConfig())

	match, err := svc.FinalizeMatch(ctx, "m1", models.MatchResult{Outcome: models.OutcomeHomeWin})
	require.NoError(t, err)
	require.True(t, match.IsFinished())

	winner := match.Predictions["winner"]
	require.True(t, winner.IsScored())
	assert.Equal(t, 1, *winner.Points)

	loser := match.Predictions["loser"]
	require.True(t, loser.IsScored())
	assert.Equal(t, 0, *loser.Points)
}

func TestFinalizeMatch_OnlyOnce(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMatchRepo(testMatch("m1", "g1", nil))
	svc := NewScoringService(repo, models.DefaultScoringConfig())

	_, err := svc.FinalizeMatch(ctx, "m1", models.MatchResult{Outcome: models.OutcomeDraw})
	require.NoError(t, err)

	_, err = svc.FinalizeMatch(ctx, "m1", models.MatchResult{Outcome: models.OutcomeAwayWin})
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestFinalizeMatch_ValidatesOutcome(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMatchRepo(testMatch("m1", "g1", nil))
	svc := NewScoringService(repo, models.DefaultScoringConfig())

	_, err := svc.FinalizeMatch(ctx, "m1", models.MatchResult{})
	assert.ErrorIs(t, err, ErrOutcomeRequired)

	_, err = svc.FinalizeMatch(ctx, "m1", models.MatchResult{Outcome: "2-1"})
	assert.ErrorIs(t, err, ErrInvalidOutcome)
}

func TestRescoreMatch_RequiresFinishedMatch(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMatchRepo(testMatch("m1", "g1", nil))
	svc := NewScoringService(repo, models.DefaultScoringConfig())

	_, err := svc.RescoreMatch(ctx, "m1", nil)
	assert.ErrorIs(t, err, ErrMatchNotFinished)
}

func TestRescoreMatch_SameResultIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMatchRepo(testMatch("m1", "g1", map[string]models.Prediction{
		"u1": {UserID: "u1", Outcome: models.OutcomeHomeWin},
	}))
	svc := NewScoringService(repo, models.DefaultScoringConfig())

	first, err := svc.FinalizeMatch(ctx, "m1", models.MatchResult{Outcome: models.OutcomeHomeWin})
	require.NoError(t, err)

	second, err := svc.RescoreMatch(ctx, "m1", nil)
	require.NoError(t, err)

	assert.Equal(t, *first.Predictions["u1"].Points, *second.Predictions["u1"].Points)
	assert.Equal(t, *first.Predictions["u1"].Breakdown, *second.Predictions["u1"].Breakdown)
}

func TestRescoreMatch_CorrectedResultReplacesScores(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMatchRepo(testMatch("m1", "g1", map[string]models.Prediction{
		"u1": {UserID: "u1", Outcome: models.OutcomeAwayWin},
	}))
	svc := NewScoringService(repo, models.DefaultScoringConfig())

	_, err := svc.FinalizeMatch(ctx, "m1", models.MatchResult{Outcome: models.OutcomeHomeWin})
	require.NoError(t, err)

	// Result entered wrong, correct it to the user's pick
	rescored, err := svc.RescoreMatch(ctx, "m1", &models.MatchResult{Outcome: models.OutcomeAwayWin})
	require.NoError(t, err)
	assert.Equal(t, 1, *rescored.Predictions["u1"].Points)

	stored, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAwayWin, stored.Result.Outcome)
	assert.Equal(t, 1, *stored.Predictions["u1"].Points)
}
