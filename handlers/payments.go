package handlers

import (
	"net/http"

	"prode-go/logging"
	"prode-go/middleware"
	"prode-go/models"
	"prode-go/services"

	"github.com/gorilla/mux"
)

// PaymentHandler handles role-upgrade payment requests and their review
type PaymentHandler struct {
	paymentService *services.PaymentService
	logger         *logging.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logging.WithPrefix("PaymentHandler"),
	}
}

// RequestUpgrade handles POST /api/payments
func (h *PaymentHandler) RequestUpgrade(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req struct {
		Amount        int64       `json:"amount"`
		Currency      string      `json:"currency"`
		Reference     string      `json:"reference"`
		RequestedRole models.Role `json:"requested_role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid JSON")
		return
	}
	if req.Amount <= 0 {
		respondBadRequest(w, "amount must be positive")
		return
	}
	if req.Reference == "" {
		respondBadRequest(w, "payment reference is required")
		return
	}

	payment, err := h.paymentService.RequestUpgrade(r.Context(), user.ID, req.Amount, req.Currency, req.Reference, req.RequestedRole)
	if err != nil {
		respondError(w, err)
		return
	}

	h.logger.Infof("Upgrade to %s requested by %s (payment %s)", req.RequestedRole, user.Email, payment.ID)
	respondJSON(w, http.StatusCreated, payment)
}

// ListPending handles GET /api/payments (superadmin)
func (h *PaymentHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListPending(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, payments)
}

// Approve handles POST /api/payments/{id}/approve (superadmin). Approval
// applies the requested role to the paying user.
func (h *PaymentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	reviewer := middleware.GetUserFromContext(r)
	paymentID := mux.Vars(r)["id"]

	payment, err := h.paymentService.Approve(r.Context(), paymentID, reviewer.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	h.logger.Infof("Payment %s approved by %s", paymentID, reviewer.Email)
	respondJSON(w, http.StatusOK, payment)
}

// Reject handles POST /api/payments/{id}/reject (superadmin)
func (h *PaymentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	reviewer := middleware.GetUserFromContext(r)
	paymentID := mux.Vars(r)["id"]

	payment, err := h.paymentService.Reject(r.Context(), paymentID, reviewer.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	h.logger.Infof("Payment %s rejected by %s", paymentID, reviewer.Email)
	respondJSON(w, http.StatusOK, payment)
}
