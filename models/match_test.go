package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatch_PredictionsOpen(t *testing.T) {
	kickoff := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	m := Match{Date: kickoff}

	assert.True(t, m.PredictionsOpen(kickoff.Add(-2*time.Hour), DefaultPredictionCutoff))
	assert.True(t, m.PredictionsOpen(kickoff.Add(-31*time.Minute), DefaultPredictionCutoff))

	// Locked exactly at the cutoff and after
	assert.False(t, m.PredictionsOpen(kickoff.Add(-30*time.Minute), DefaultPredictionCutoff))
	assert.False(t, m.PredictionsOpen(kickoff.Add(-5*time.Minute), DefaultPredictionCutoff))
	assert.False(t, m.PredictionsOpen(kickoff.Add(time.Hour), DefaultPredictionCutoff))
}

func TestMatch_PredictionsOpen_FinishedNeverReopens(t *testing.T) {
	m := Match{Date: time.Now().Add(24 * time.Hour), Finished: true}
	assert.False(t, m.PredictionsOpen(time.Now(), DefaultPredictionCutoff))
}

func TestMatch_IsFinished(t *testing.T) {
	m := Match{Finished: true}
	assert.False(t, m.IsFinished(), "finished flag without a result is not final")

	m.Result = &MatchResult{Outcome: OutcomeDraw}
	assert.True(t, m.IsFinished())
}

func TestGenerateInviteCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateInviteCode()
		assert.NoError(t, err)
		assert.Len(t, code, 6)
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "0")
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1)
}
