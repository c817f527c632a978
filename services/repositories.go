package services

import (
	"context"

	"prode-go/models"
)

// Repository interfaces consumed by the service layer. The MongoDB
// implementations live in the database package; tests substitute in-memory
// fakes.

// UserRepository provides user persistence
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []string) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, userID string, role models.Role) error
	UpdateAchievements(ctx context.Context, userID string, unlocked []models.UserAchievement) error
}

// GroupRepository provides group and jornada persistence
type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id string) (*models.Group, error)
	GetByCode(ctx context.Context, code string) (*models.Group, error)
	GetByMember(ctx context.Context, userID string) ([]models.Group, error)
	AddMember(ctx context.Context, groupID, userID string) error
	AddJornada(ctx context.Context, groupID string, jornada models.Jornada) error
}

// MatchRepository provides match and prediction persistence. All Find methods
// return matches sorted by kickoff ascending; the statistics aggregator
// depends on that order.
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id string) (*models.Match, error)
	FindByGroup(ctx context.Context, groupID string) ([]models.Match, error)
	FindFinishedByGroup(ctx context.Context, groupID string) ([]models.Match, error)
	FindFinishedByPredictor(ctx context.Context, userID string) ([]models.Match, error)
	UpsertPrediction(ctx context.Context, matchID string, pred models.Prediction) error
	Finalize(ctx context.Context, matchID string, result models.MatchResult, scored map[string]models.Prediction) (*models.Match, error)
	ReplaceScores(ctx context.Context, matchID string, result models.MatchResult, scored map[string]models.Prediction) error
	Delete(ctx context.Context, matchID string) error
}

// PaymentRepository provides payment persistence
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	FindPending(ctx context.Context) ([]models.Payment, error)
	SetStatus(ctx context.Context, paymentID string, status models.PaymentStatus, reviewerID string) error
}
