package services

import (
	"context"
	"errors"
	"fmt"

	"prode-go/logging"
	"prode-go/models"

	"github.com/google/uuid"
)

// PaymentService handles payment-based role upgrade requests and their
// review by a superadmin.
type PaymentService struct {
	paymentRepo PaymentRepository
	userRepo    UserRepository
	logger      *logging.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo PaymentRepository, userRepo UserRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		logger:      logging.WithPrefix("PaymentService"),
	}
}

// RequestUpgrade records a payment toward a role upgrade, pending review
func (s *PaymentService) RequestUpgrade(ctx context.Context, userID string, amount int64, currency, reference string, requestedRole models.Role) (*models.Payment, error) {
	if requestedRole != models.RoleAdmin && requestedRole != models.RoleSuperAdmin {
		return nil, ErrInvalidUpgradeRole
	}
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if reference == "" {
		return nil, errors.New("payment reference is required")
	}
	if currency == "" {
		currency = "ARS"
	}

	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:            uuid.NewString(),
		UserID:        userID,
		Amount:        amount,
		Currency:      currency,
		Reference:     reference,
		RequestedRole: requestedRole,
		Status:        models.PaymentStatusPending,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.logger.Infof("User %s requested %s upgrade (payment %s, ref %s)",
		userID, requestedRole, payment.ID, reference)
	return payment, nil
}

// ListPending returns payments awaiting review, oldest first
func (s *PaymentService) ListPending(ctx context.Context) ([]models.Payment, error) {
	return s.paymentRepo.FindPending(ctx)
}

// Approve marks the payment approved and applies the role upgrade
func (s *PaymentService) Approve(ctx context.Context, paymentID, reviewerID string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !payment.IsPending() {
		return nil, ErrPaymentNotPending
	}

	if err := s.paymentRepo.SetStatus(ctx, paymentID, models.PaymentStatusApproved, reviewerID); err != nil {
		return nil, fmt.Errorf("failed to approve payment: %w", err)
	}

	if err := s.userRepo.UpdateRole(ctx, payment.UserID, payment.RequestedRole); err != nil {
		return nil, fmt.Errorf("payment approved but role update failed: %w", err)
	}

	s.logger.Infof("Payment %s approved by %s: user %s upgraded to %s",
		paymentID, reviewerID, payment.UserID, payment.RequestedRole)

	return s.paymentRepo.GetByID(ctx, paymentID)
}

// Reject marks the payment rejected without touching the user's role
func (s *PaymentService) Reject(ctx context.Context, paymentID, reviewerID string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !payment.IsPending() {
		return nil, ErrPaymentNotPending
	}

	if err := s.paymentRepo.SetStatus(ctx, paymentID, models.PaymentStatusRejected, reviewerID); err != nil {
		return nil, fmt.Errorf("failed to reject payment: %w", err)
	}

	s.logger.Infof("Payment %s rejected by %s", paymentID, reviewerID)

	return s.paymentRepo.GetByID(ctx, paymentID)
}
