package services

import (
	"context"
	"fmt"

	"prode-go/logging"
	"prode-go/models"
)

// RankingService builds leaderboards over a group or jornada scope
type RankingService struct {
	matchRepo MatchRepository
	groupRepo GroupRepository
	userRepo  UserRepository
	logger    *logging.Logger
}

// NewRankingService creates a new ranking service
func NewRankingService(matchRepo MatchRepository, groupRepo GroupRepository, userRepo UserRepository) *RankingService {
	return &RankingService{
		matchRepo: matchRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		logger:    logging.WithPrefix("RankingService"),
	}
}

// GetGroupRanking builds the leaderboard over all of a group's finished
// matches. Every roster member appears, including those who never predicted.
func (r *RankingService) GetGroupRanking(ctx context.Context, groupID string) ([]models.RankingEntry, error) {
	return r.buildRanking(ctx, groupID, "")
}

// GetJornadaRanking builds the leaderboard restricted to one jornada
func (r *RankingService) GetJornadaRanking(ctx context.Context, groupID, jornadaID string) ([]models.RankingEntry, error) {
	group, err := r.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.FindJornada(jornadaID) == nil {
		return nil, ErrJornadaNotFound
	}

	return r.buildRanking(ctx, groupID, jornadaID)
}

func (r *RankingService) buildRanking(ctx context.Context, groupID, jornadaID string) ([]models.RankingEntry, error) {
	group, err := r.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	matches, err := r.matchRepo.FindFinishedByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for ranking: %w", err)
	}
	matches = filterJornada(matches, jornadaID)

	stats := make([]models.UserStatistics, 0, len(group.Members))
	for _, memberID := range group.Members {
		stats = append(stats, models.ComputeUserStatistics(memberID, collectPredictions(matches, memberID)))
	}

	entries := models.BuildRanking(stats)

	users, err := r.userRepo.GetUsersByIDs(ctx, group.Members)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster names: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	for i := range entries {
		entries[i].UserName = names[entries[i].UserID]
	}

	r.logger.Debugf("Built ranking for group %s (jornada=%q): %d entries over %d matches",
		groupID, jornadaID, len(entries), len(matches))
	return entries, nil
}
