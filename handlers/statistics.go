package handlers

import (
	"net/http"

	"prode-go/logging"
	"prode-go/middleware"
	"prode-go/services"

	"github.com/gorilla/mux"
)

// StatisticsHandler serves per-user aggregated statistics
type StatisticsHandler struct {
	statisticsService *services.StatisticsService
	groupService      *services.GroupService
	logger            *logging.Logger
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(statisticsService *services.StatisticsService, groupService *services.GroupService) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsService: statisticsService,
		groupService:      groupService,
		logger:            logging.WithPrefix("StatisticsHandler"),
	}
}

// GetMyStatistics handles GET /api/groups/{id}/stats. An optional ?jornada=
// query parameter narrows the scope to one jornada.
func (h *StatisticsHandler) GetMyStatistics(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	groupID := mux.Vars(r)["id"]
	jornadaID := r.URL.Query().Get("jornada")

	group, err := h.groupService.GetGroup(r.Context(), groupID, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	if jornadaID != "" && group.FindJornada(jornadaID) == nil {
		respondError(w, services.ErrJornadaNotFound)
		return
	}

	stats, err := h.statisticsService.GetUserStatistics(r.Context(), groupID, jornadaID, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
