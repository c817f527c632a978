package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func findProgress(t *testing.T, progress []AchievementProgress, id string) AchievementProgress {
	t.Helper()
	for _, p := range progress {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("achievement %s not in evaluated catalog", id)
	return AchievementProgress{}
}

func TestEvaluateAchievements_EmptyHistory(t *testing.T) {
	progress := EvaluateAchievements(DefaultCatalog(), UserStatistics{UserID: "u1"}, nil, time.Now())

	assert.Len(t, progress, len(DefaultCatalog()))
	for _, p := range progress {
		assert.Equal(t, 0, p.Progress, p.ID)
		assert.False(t, p.IsUnlocked(), p.ID)
	}
}

func TestEvaluateAchievements_ThresholdBoundary(t *testing.T) {
	now := time.Now()

	// One short of the threshold stays locked
	progress := EvaluateAchievements(DefaultCatalog(), UserStatistics{TotalPredictions: 9}, nil, now)
	activo := findProgress(t, progress, "participante_activo")
	assert.Equal(t, 9, activo.Progress)
	assert.Equal(t, 10, activo.MaxProgress)
	assert.False(t, activo.IsUnlocked())

	// Exactly at the threshold unlocks
	progress = EvaluateAchievements(DefaultCatalog(), UserStatistics{TotalPredictions: 10}, nil, now)
	activo = findProgress(t, progress, "participante_activo")
	assert.True(t, activo.IsUnlocked())
	assert.Equal(t, now, *activo.UnlockedAt)
}

func TestEvaluateAchievements_StreakUsesLongest(t *testing.T) {
	// A past 7-streak unlocks the 7 tier even if the current streak is broken
	stats := UserStatistics{CurrentStreak: 0, LongestStreak: 7}
	progress := EvaluateAchievements(DefaultCatalog(), stats, nil, time.Now())

	assert.True(t, findProgress(t, progress, "racha_caliente").IsUnlocked())
	assert.True(t, findProgress(t, progress, "racha_ardiente").IsUnlocked())

	imparable := findProgress(t, progress, "imparable")
	assert.False(t, imparable.IsUnlocked())
	assert.Equal(t, 7, imparable.Progress)
	assert.Equal(t, 15, imparable.MaxProgress)
}

func TestEvaluateAchievements_PerfectMatch(t *testing.T) {
	perfect := Prediction{
		Points: intPtr(5),
		Breakdown: &ScoreBreakdown{
			Result: 1, Corners: 1, Cards: 1, Penalties: 1, FreeKicks: 1, Total: 5,
		},
	}

	progress := EvaluateAchievements(DefaultCatalog(), UserStatistics{}, []Prediction{perfect}, time.Now())
	assert.True(t, findProgress(t, progress, "partido_perfecto").IsUnlocked())

	// Outcome plus stats without one aspect is not perfect
	almost := Prediction{
		Points: intPtr(4),
		Breakdown: &ScoreBreakdown{
			Result: 1, Corners: 1, Cards: 1, Penalties: 1, Total: 4,
		},
	}
	progress = EvaluateAchievements(DefaultCatalog(), UserStatistics{}, []Prediction{almost}, time.Now())
	assert.False(t, findProgress(t, progress, "partido_perfecto").IsUnlocked())
}

func TestEvaluateAchievements_Comeback(t *testing.T) {
	miss := scored(0, false)
	hit := scored(1, true)

	// Five misses then a hit is a comeback
	history := []Prediction{miss, miss, miss, miss, miss, hit}
	progress := EvaluateAchievements(DefaultCatalog(), UserStatistics{}, history, time.Now())
	assert.True(t, findProgress(t, progress, "remontada").IsUnlocked())

	// Four misses is not enough
	history = []Prediction{miss, miss, miss, miss, hit}
	progress = EvaluateAchievements(DefaultCatalog(), UserStatistics{}, history, time.Now())
	remontada := findProgress(t, progress, "remontada")
	assert.False(t, remontada.IsUnlocked())
	assert.Equal(t, 0, remontada.Progress)
}

func TestEvaluateAchievements_ComebackIgnoresUnscored(t *testing.T) {
	miss := scored(0, false)
	hit := scored(1, true)
	pending := Prediction{Outcome: OutcomeDraw}

	// A pending prediction in the middle neither breaks nor extends the run
	history := []Prediction{miss, miss, pending, miss, miss, miss, hit}
	progress := EvaluateAchievements(DefaultCatalog(), UserStatistics{}, history, time.Now())
	assert.True(t, findProgress(t, progress, "remontada").IsUnlocked())
}

func TestUnlockedSubset(t *testing.T) {
	now := time.Now()
	stats := UserStatistics{TotalPredictions: 1, ExactHits: 1, TotalPoints: 1, LongestStreak: 1}

	progress := EvaluateAchievements(DefaultCatalog(), stats, nil, now)
	unlocked := UnlockedSubset(progress)

	ids := make([]string, len(unlocked))
	for i, u := range unlocked {
		ids[i] = u.ID
		assert.Equal(t, now, u.UnlockedAt)
	}
	assert.ElementsMatch(t, []string{"primera_prediccion", "primer_acierto"}, ids)
}
