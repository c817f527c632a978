package services

import (
	"context"
	"testing"

	"prode-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestUpgrade_DefaultsAndValidation(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo(&models.User{ID: "ana", Role: models.RoleUser})
	svc := NewPaymentService(newFakePaymentRepo(), userRepo)

	payment, err := svc.RequestUpgrade(ctx, "ana", 5000, "", "MP-123", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "ARS", payment.Currency)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)

	_, err = svc.RequestUpgrade(ctx, "ana", 5000, "ARS", "MP-124", models.RoleUser)
	assert.ErrorIs(t, err, ErrInvalidUpgradeRole)

	_, err = svc.RequestUpgrade(ctx, "ana", 0, "ARS", "MP-125", models.RoleAdmin)
	assert.Error(t, err)

	_, err = svc.RequestUpgrade(ctx, "ana", 5000, "ARS", "", models.RoleAdmin)
	assert.Error(t, err)
}

func TestApprove_UpgradesRole(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo(&models.User{ID: "ana", Role: models.RoleUser})
	svc := NewPaymentService(newFakePaymentRepo(), userRepo)

	payment, err := svc.RequestUpgrade(ctx, "ana", 5000, "ARS", "MP-123", models.RoleAdmin)
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, payment.ID, "boss")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusApproved, approved.Status)
	assert.Equal(t, "boss", approved.ReviewedBy)
	require.NotNil(t, approved.ReviewedAt)

	user, err := userRepo.GetUserByID(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestReject_LeavesRoleUntouched(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo(&models.User{ID: "ana", Role: models.RoleUser})
	svc := NewPaymentService(newFakePaymentRepo(), userRepo)

	payment, err := svc.RequestUpgrade(ctx, "ana", 5000, "ARS", "MP-123", models.RoleSuperAdmin)
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, payment.ID, "boss")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRejected, rejected.Status)

	user, err := userRepo.GetUserByID(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestReview_IsOneShot(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo(&models.User{ID: "ana", Role: models.RoleUser})
	svc := NewPaymentService(newFakePaymentRepo(), userRepo)

	payment, err := svc.RequestUpgrade(ctx, "ana", 5000, "ARS", "MP-123", models.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, payment.ID, "boss")
	require.NoError(t, err)

	_, err = svc.Reject(ctx, payment.ID, "boss")
	assert.ErrorIs(t, err, ErrPaymentNotPending)

	_, err = svc.Approve(ctx, payment.ID, "boss")
	assert.ErrorIs(t, err, ErrPaymentNotPending)
}

func TestListPending_ExcludesReviewed(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo(&models.User{ID: "ana", Role: models.RoleUser})
	svc := NewPaymentService(newFakePaymentRepo(), userRepo)

	first, err := svc.RequestUpgrade(ctx, "ana", 5000, "ARS", "MP-1", models.RoleAdmin)
	require.NoError(t, err)
	second, err := svc.RequestUpgrade(ctx, "ana", 5000, "ARS", "MP-2", models.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, first.ID, "boss")
	require.NoError(t, err)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}
