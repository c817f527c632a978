package handlers

import (
	"net/http"

	"prode-go/logging"
	"prode-go/middleware"
	"prode-go/services"

	"github.com/gorilla/mux"
)

// RankingHandler serves group and jornada leaderboards
type RankingHandler struct {
	rankingService *services.RankingService
	groupService   *services.GroupService
	logger         *logging.Logger
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(rankingService *services.RankingService, groupService *services.GroupService) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
		groupService:   groupService,
		logger:         logging.WithPrefix("RankingHandler"),
	}
}

// GetGroupRanking handles GET /api/groups/{id}/ranking
func (h *RankingHandler) GetGroupRanking(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	groupID := mux.Vars(r)["id"]

	// Membership gate before exposing the leaderboard
	if _, err := h.groupService.GetGroup(r.Context(), groupID, user.ID); err != nil {
		respondError(w, err)
		return
	}

	entries, err := h.rankingService.GetGroupRanking(r.Context(), groupID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// GetJornadaRanking handles GET /api/groups/{id}/jornadas/{jornadaID}/ranking
func (h *RankingHandler) GetJornadaRanking(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	vars := mux.Vars(r)
	groupID := vars["id"]
	jornadaID := vars["jornadaID"]

	if _, err := h.groupService.GetGroup(r.Context(), groupID, user.ID); err != nil {
		respondError(w, err)
		return
	}

	entries, err := h.rankingService.GetJornadaRanking(r.Context(), groupID, jornadaID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
