package handlers

import (
	"net/http"

	"prode-go/logging"
	"prode-go/middleware"
	"prode-go/services"
)

// AchievementHandler serves the annotated achievement catalog
type AchievementHandler struct {
	achievementService *services.AchievementService
	logger             *logging.Logger
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(achievementService *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
		logger:             logging.WithPrefix("AchievementHandler"),
	}
}

// GetAchievements handles GET /api/achievements. The full catalog with
// progress is recomputed per request; evaluation also persists the unlocked
// subset to the profile as a side effect.
func (h *AchievementHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	progress, err := h.achievementService.EvaluateUser(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, progress)
}
