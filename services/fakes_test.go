package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"prode-go/models"
)

// In-memory repository fakes backing the service tests.

var errFakeNotFound = errors.New("not found")

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errFakeNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []string) ([]models.User, error) {
	var found []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			found = append(found, *u)
		}
	}
	return found, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errFakeNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, userID string, role models.Role) error {
	u, ok := r.users[userID]
	if !ok {
		return errFakeNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) UpdateAchievements(_ context.Context, userID string, unlocked []models.UserAchievement) error {
	u, ok := r.users[userID]
	if !ok {
		return errFakeNotFound
	}
	u.Achievements = unlocked
	return nil
}

type fakeGroupRepo struct {
	groups map[string]*models.Group
}

func newFakeGroupRepo(groups ...*models.Group) *fakeGroupRepo {
	repo := &fakeGroupRepo{groups: make(map[string]*models.Group)}
	for _, g := range groups {
		repo.groups[g.ID] = g
	}
	return repo
}

func (r *fakeGroupRepo) Create(_ context.Context, group *models.Group) error {
	r.groups[group.ID] = group
	return nil
}

func (r *fakeGroupRepo) GetByID(_ context.Context, id string) (*models.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, errFakeNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGroupRepo) GetByCode(_ context.Context, code string) (*models.Group, error) {
	for _, g := range r.groups {
		if g.Code == code {
			copied := *g
			return &copied, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeGroupRepo) GetByMember(_ context.Context, userID string) ([]models.Group, error) {
	var found []models.Group
	for _, g := range r.groups {
		if g.HasMember(userID) {
			found = append(found, *g)
		}
	}
	return found, nil
}

func (r *fakeGroupRepo) AddMember(_ context.Context, groupID, userID string) error {
	g, ok := r.groups[groupID]
	if !ok {
		return errFakeNotFound
	}
	if !g.HasMember(userID) {
		g.Members = append(g.Members, userID)
	}
	return nil
}

func (r *fakeGroupRepo) AddJornada(_ context.Context, groupID string, jornada models.Jornada) error {
	g, ok := r.groups[groupID]
	if !ok {
		return errFakeNotFound
	}
	g.Jornadas = append(g.Jornadas, jornada)
	return nil
}

type fakeMatchRepo struct {
	matches map[string]*models.Match
}

func newFakeMatchRepo(matches ...*models.Match) *fakeMatchRepo {
	repo := &fakeMatchRepo{matches: make(map[string]*models.Match)}
	for _, m := range matches {
		if m.Predictions == nil {
			m.Predictions = make(map[string]models.Prediction)
		}
		repo.matches[m.ID] = m
	}
	return repo
}

func (r *fakeMatchRepo) Create(_ context.Context, match *models.Match) error {
	if match.Predictions == nil {
		match.Predictions = make(map[string]models.Prediction)
	}
	r.matches[match.ID] = match
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id string) (*models.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, errFakeNotFound
	}
	copied := *m
	copied.Predictions = make(map[string]models.Prediction, len(m.Predictions))
	for k, v := range m.Predictions {
		copied.Predictions[k] = v
	}
	return &copied, nil
}

func (r *fakeMatchRepo) find(groupID string, keep func(*models.Match) bool) []models.Match {
	var found []models.Match
	for _, m := range r.matches {
		if groupID != "" && m.GroupID != groupID {
			continue
		}
		if keep(m) {
			found = append(found, *m)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Date.Before(found[j].Date) })
	return found
}

func (r *fakeMatchRepo) FindByGroup(_ context.Context, groupID string) ([]models.Match, error) {
	return r.find(groupID, func(*models.Match) bool { return true }), nil
}

func (r *fakeMatchRepo) FindFinishedByGroup(_ context.Context, groupID string) ([]models.Match, error) {
	return r.find(groupID, func(m *models.Match) bool { return m.Finished }), nil
}

func (r *fakeMatchRepo) FindFinishedByPredictor(_ context.Context, userID string) ([]models.Match, error) {
	return r.find("", func(m *models.Match) bool {
		_, ok := m.Predictions[userID]
		return m.Finished && ok
	}), nil
}

func (r *fakeMatchRepo) UpsertPrediction(_ context.Context, matchID string, pred models.Prediction) error {
	m, ok := r.matches[matchID]
	if !ok {
		return errFakeNotFound
	}
	if m.Finished {
		return errors.New("match already finished")
	}
	m.Predictions[pred.UserID] = pred
	return nil
}

func (r *fakeMatchRepo) Finalize(_ context.Context, matchID string, result models.MatchResult, scored map[string]models.Prediction) (*models.Match, error) {
	m, ok := r.matches[matchID]
	if !ok {
		return nil, errFakeNotFound
	}
	if m.Finished {
		return nil, errors.New("match already finished")
	}
	m.Finished = true
	m.Result = &result
	m.Predictions = scored
	m.UpdatedAt = time.Now()
	copied := *m
	return &copied, nil
}

func (r *fakeMatchRepo) ReplaceScores(_ context.Context, matchID string, result models.MatchResult, scored map[string]models.Prediction) error {
	m, ok := r.matches[matchID]
	if !ok {
		return errFakeNotFound
	}
	if !m.Finished {
		return errors.New("match not finished")
	}
	m.Result = &result
	m.Predictions = scored
	return nil
}

func (r *fakeMatchRepo) Delete(_ context.Context, matchID string) error {
	if _, ok := r.matches[matchID]; !ok {
		return errFakeNotFound
	}
	delete(r.matches, matchID)
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*models.Payment
	order    []string
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	r.payments[payment.ID] = payment
	r.order = append(r.order, payment.ID)
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id string) (*models.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, errFakeNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) FindPending(_ context.Context) ([]models.Payment, error) {
	var pending []models.Payment
	for _, id := range r.order {
		if p := r.payments[id]; p.IsPending() {
			pending = append(pending, *p)
		}
	}
	return pending, nil
}

func (r *fakePaymentRepo) SetStatus(_ context.Context, paymentID string, status models.PaymentStatus, reviewerID string) error {
	p, ok := r.payments[paymentID]
	if !ok {
		return errFakeNotFound
	}
	if !p.IsPending() {
		return errors.New("payment already reviewed")
	}
	now := time.Now()
	p.Status = status
	p.ReviewedBy = reviewerID
	p.ReviewedAt = &now
	return nil
}
