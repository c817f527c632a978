package handlers

import (
	"net/http"
	"time"

	"prode-go/logging"
	"prode-go/middleware"
	"prode-go/models"
	"prode-go/services"

	"github.com/gorilla/mux"
)

// MatchHandler handles match administration, predictions and result
// declaration.
type MatchHandler struct {
	matchService      *services.MatchService
	predictionService *services.PredictionService
	scoringService    *services.ScoringService
	logger            *logging.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService *services.MatchService, predictionService *services.PredictionService, scoringService *services.ScoringService) *MatchHandler {
	return &MatchHandler{
		matchService:      matchService,
		predictionService: predictionService,
		scoringService:    scoringService,
		logger:            logging.WithPrefix("MatchHandler"),
	}
}

// CreateMatch handles POST /api/matches (admin)
func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GroupID   string    `json:"group_id"`
		JornadaID string    `json:"jornada_id"`
		HomeTeam  string    `json:"home_team"`
		AwayTeam  string    `json:"away_team"`
		Date      time.Time `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid JSON")
		return
	}
	if req.GroupID == "" || req.HomeTeam == "" || req.AwayTeam == "" {
		respondBadRequest(w, "group_id, home_team and away_team are required")
		return
	}
	if req.Date.IsZero() {
		respondBadRequest(w, "kickoff date is required")
		return
	}

	match, err := h.matchService.CreateMatch(r.Context(), req.GroupID, req.JornadaID, req.HomeTeam, req.AwayTeam, req.Date)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, match)
}

// ListGroupMatches handles GET /api/groups/{id}/matches
func (h *MatchHandler) ListGroupMatches(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	groupID := mux.Vars(r)["id"]

	matches, err := h.matchService.GetGroupMatches(r.Context(), groupID, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, matches)
}

// DeleteMatch handles DELETE /api/matches/{id} (admin)
func (h *MatchHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]

	if err := h.matchService.DeleteMatch(r.Context(), matchID); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// SubmitPrediction handles PUT /api/matches/{id}/prediction
func (h *MatchHandler) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	matchID := mux.Vars(r)["id"]

	var req struct {
		Outcome models.Outcome          `json:"outcome"`
		Stats   *models.PredictionStats `json:"stats"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid JSON")
		return
	}

	pred, err := h.predictionService.SubmitPrediction(r.Context(), matchID, user.ID, req.Outcome, req.Stats)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, pred)
}

// DeclareResult handles POST /api/matches/{id}/result (admin). Declaring a
// result finalizes the match and scores every submitted prediction.
func (h *MatchHandler) DeclareResult(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	matchID := mux.Vars(r)["id"]

	var req models.MatchResult
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid JSON")
		return
	}

	match, err := h.scoringService.FinalizeMatch(r.Context(), matchID, req)
	if err != nil {
		respondError(w, err)
		return
	}

	h.logger.Infof("Result declared for match %s by %s: %s", matchID, user.Email, req.Outcome)
	respondJSON(w, http.StatusOK, match)
}

// RescoreMatch handles POST /api/matches/{id}/rescore (admin). Accepts an
// optional corrected result in the body; an empty body rescores with the
// stored result.
func (h *MatchHandler) RescoreMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]

	var req *models.MatchResult
	if r.ContentLength > 0 {
		req = &models.MatchResult{}
		if err := decodeJSON(r, req); err != nil {
			respondBadRequest(w, "invalid JSON")
			return
		}
	}

	match, err := h.scoringService.RescoreMatch(r.Context(), matchID, req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, match)
}
