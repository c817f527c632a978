package services

import (
	"context"
	"fmt"
	"time"

	"prode-go/logging"
	"prode-go/models"
)

// AchievementService evaluates the achievement catalog against a user's
// global prediction history. The full annotated catalog is recomputed on
// every read; only the unlocked subset is written back to the profile.
type AchievementService struct {
	matchRepo MatchRepository
	userRepo  UserRepository
	catalog   []models.Achievement
	logger    *logging.Logger
}

// NewAchievementService creates a new achievement service with the given
// catalog.
func NewAchievementService(matchRepo MatchRepository, userRepo UserRepository, catalog []models.Achievement) *AchievementService {
	return &AchievementService{
		matchRepo: matchRepo,
		userRepo:  userRepo,
		catalog:   catalog,
		logger:    logging.WithPrefix("AchievementService"),
	}
}

// EvaluateUser recomputes every catalog entry's progress for the user and
// persists the unlocked subset. Achievements are global: the history spans
// every group the user predicted in. Previously stored unlock timestamps are
// preserved; newly crossed thresholds are stamped with the current time.
func (s *AchievementService) EvaluateUser(ctx context.Context, userID string) ([]models.AchievementProgress, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.FindFinishedByPredictor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load prediction history: %w", err)
	}

	history := collectPredictions(matches, userID)
	stats := models.ComputeUserStatistics(userID, history)
	progress := models.EvaluateAchievements(s.catalog, stats, history, time.Now())

	// Keep the first-unlock timestamp for achievements already on the profile
	priorUnlocks := make(map[string]time.Time, len(user.Achievements))
	for _, a := range user.Achievements {
		priorUnlocks[a.ID] = a.UnlockedAt
	}
	newlyUnlocked := 0
	for i := range progress {
		if !progress[i].IsUnlocked() {
			continue
		}
		if at, ok := priorUnlocks[progress[i].ID]; ok {
			progress[i].UnlockedAt = &at
		} else {
			newlyUnlocked++
		}
	}

	unlocked := models.UnlockedSubset(progress)
	if err := s.userRepo.UpdateAchievements(ctx, userID, unlocked); err != nil {
		return nil, fmt.Errorf("failed to persist unlocked achievements: %w", err)
	}

	if newlyUnlocked > 0 {
		s.logger.Infof("User %s unlocked %d new achievements (%d total)", userID, newlyUnlocked, len(unlocked))
	}
	return progress, nil
}
