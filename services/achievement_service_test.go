package services

import (
	"context"
	"testing"
	"time"

	"prode-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateUser_PersistsUnlockedSubsetOnly(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 20, 0, 0, 0, time.UTC)
	matchRepo := newFakeMatchRepo(
		finishedMatch("m1", "g1", "", base, map[string]int{"ana": 1}),
	)
	userRepo := newFakeUserRepo(&models.User{ID: "ana", Name: "Ana"})
	svc := NewAchievementService(matchRepo, userRepo, models.DefaultCatalog())

	progress, err := svc.EvaluateUser(ctx, "ana")
	require.NoError(t, err)
	assert.Len(t, progress, len(models.DefaultCatalog()))

	// One hit in one prediction: first-prediction and first-hit unlock
	user, err := userRepo.GetUserByID(ctx, "ana")
	require.NoError(t, err)
	ids := make([]string, len(user.Achievements))
	for i, a := range user.Achievements {
		ids[i] = a.ID
	}
	assert.ElementsMatch(t, []string{"primera_prediccion", "primer_acierto"}, ids)
}

func TestEvaluateUser_SpansGroups(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 20, 0, 0, 0, time.UTC)
	matchRepo := newFakeMatchRepo(
		finishedMatch("m1", "g1", "", base, map[string]int{"ana": 1}),
		finishedMatch("m2", "g2", "", base.Add(24*time.Hour), map[string]int{"ana": 1}),
		finishedMatch("m3", "g3", "", base.Add(48*time.Hour), map[string]int{"ana": 1}),
	)
	userRepo := newFakeUserRepo(&models.User{ID: "ana", Name: "Ana"})
	svc := NewAchievementService(matchRepo, userRepo, models.DefaultCatalog())

	progress, err := svc.EvaluateUser(ctx, "ana")
	require.NoError(t, err)

	for _, p := range progress {
		if p.ID == "racha_caliente" {
			assert.True(t, p.IsUnlocked(), "three straight hits across groups should unlock the streak")
		}
	}
}

func TestEvaluateUser_KeepsOriginalUnlockTimestamp(t *testing.T) {
	ctx := context.Background()
	original := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	base := time.Date(2026, 4, 1, 20, 0, 0, 0, time.UTC)

	matchRepo := newFakeMatchRepo(
		finishedMatch("m1", "g1", "", base, map[string]int{"ana": 1}),
	)
	userRepo := newFakeUserRepo(&models.User{
		ID:   "ana",
		Name: "Ana",
		Achievements: []models.UserAchievement{
			{ID: "primera_prediccion", Name: "Primera Prediccion", UnlockedAt: original},
		},
	})
	svc := NewAchievementService(matchRepo, userRepo, models.DefaultCatalog())

	progress, err := svc.EvaluateUser(ctx, "ana")
	require.NoError(t, err)

	for _, p := range progress {
		if p.ID == "primera_prediccion" {
			require.True(t, p.IsUnlocked())
			assert.Equal(t, original, *p.UnlockedAt)
		}
	}

	user, err := userRepo.GetUserByID(ctx, "ana")
	require.NoError(t, err)
	for _, a := range user.Achievements {
		if a.ID == "primera_prediccion" {
			assert.Equal(t, original, a.UnlockedAt)
		}
	}
}

func TestEvaluateUser_NoHistory(t *testing.T) {
	ctx := context.Background()
	matchRepo := newFakeMatchRepo()
	userRepo := newFakeUserRepo(&models.User{ID: "ana", Name: "Ana"})
	svc := NewAchievementService(matchRepo, userRepo, models.DefaultCatalog())

	progress, err := svc.EvaluateUser(ctx, "ana")
	require.NoError(t, err)

	for _, p := range progress {
		assert.False(t, p.IsUnlocked(), p.ID)
	}

	user, err := userRepo.GetUserByID(ctx, "ana")
	require.NoError(t, err)
	assert.Empty(t, user.Achievements)
}
