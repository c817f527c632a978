package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prode-go/logging"
	"prode-go/models"

	"github.com/google/uuid"
)

// GroupService handles groups, rosters and jornadas
type GroupService struct {
	groupRepo GroupRepository
	userRepo  UserRepository
	logger    *logging.Logger
}

// NewGroupService creates a new group service
func NewGroupService(groupRepo GroupRepository, userRepo UserRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
		logger:    logging.WithPrefix("GroupService"),
	}
}

// CreateGroup creates a group with the creator as owner and first member
func (s *GroupService) CreateGroup(ctx context.Context, name, ownerID string) (*models.Group, error) {
	if name == "" {
		return nil, errors.New("group name is required")
	}

	code, err := models.GenerateInviteCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}

	group := &models.Group{
		ID:      uuid.NewString(),
		Name:    name,
		Code:    code,
		OwnerID: ownerID,
		Members: []string{ownerID},
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	s.logger.Infof("Created group %s (%s) with code %s", group.Name, group.ID, group.Code)
	return group, nil
}

// JoinGroup adds a user to the group matching the invite code
func (s *GroupService) JoinGroup(ctx context.Context, code, userID string) (*models.Group, error) {
	group, err := s.groupRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if group.HasMember(userID) {
		return nil, ErrAlreadyMember
	}

	if err := s.groupRepo.AddMember(ctx, group.ID, userID); err != nil {
		return nil, fmt.Errorf("failed to join group: %w", err)
	}

	group.Members = append(group.Members, userID)
	s.logger.Infof("User %s joined group %s", userID, group.ID)
	return group, nil
}

// GetGroup returns a group, restricted to its members
func (s *GroupService) GetGroup(ctx context.Context, groupID, userID string) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if !group.HasMember(userID) {
		return nil, ErrNotGroupMember
	}

	return group, nil
}

// GetUserGroups returns every group the user belongs to
func (s *GroupService) GetUserGroups(ctx context.Context, userID string) ([]models.Group, error) {
	return s.groupRepo.GetByMember(ctx, userID)
}

// AddJornada appends a named round to the group
func (s *GroupService) AddJornada(ctx context.Context, groupID, name string, startsAt, endsAt time.Time) (*models.Jornada, error) {
	if name == "" {
		return nil, errors.New("jornada name is required")
	}
	if !endsAt.After(startsAt) {
		return nil, errors.New("jornada must end after it starts")
	}

	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}

	jornada := models.Jornada{
		ID:       uuid.NewString(),
		Name:     name,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}

	if err := s.groupRepo.AddJornada(ctx, groupID, jornada); err != nil {
		return nil, fmt.Errorf("failed to add jornada: %w", err)
	}

	s.logger.Infof("Added jornada %s (%s) to group %s", jornada.Name, jornada.ID, groupID)
	return &jornada, nil
}

// GetRosterNames resolves member IDs to display names
func (s *GroupService) GetRosterNames(ctx context.Context, group *models.Group) (map[string]string, error) {
	users, err := s.userRepo.GetUsersByIDs(ctx, group.Members)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}
