package handlers

import (
	"net/http"
	"time"

	"prode-go/logging"
	"prode-go/middleware"
	"prode-go/services"

	"github.com/gorilla/mux"
)

// GroupHandler handles group and jornada management
type GroupHandler struct {
	groupService *services.GroupService
	logger       *logging.Logger
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		logger:       logging.WithPrefix("GroupHandler"),
	}
}

// CreateGroup handles POST /api/groups
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid JSON")
		return
	}
	if req.Name == "" {
		respondBadRequest(w, "group name is required")
		return
	}

	group, err := h.groupService.CreateGroup(r.Context(), req.Name, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, group)
}

// JoinGroup handles POST /api/groups/join
func (h *GroupHandler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid JSON")
		return
	}
	if req.Code == "" {
		respondBadRequest(w, "invite code is required")
		return
	}

	group, err := h.groupService.JoinGroup(r.Context(), req.Code, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, group)
}

// GetGroup handles GET /api/groups/{id}
func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	groupID := mux.Vars(r)["id"]

	group, err := h.groupService.GetGroup(r.Context(), groupID, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, group)
}

// ListGroups handles GET /api/groups
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	groups, err := h.groupService.GetUserGroups(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, groups)
}

// AddJornada handles POST /api/groups/{id}/jornadas (admin)
func (h *GroupHandler) AddJornada(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["id"]

	var req struct {
		Name     string    `json:"name"`
		StartsAt time.Time `json:"starts_at"`
		EndsAt   time.Time `json:"ends_at"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid JSON")
		return
	}
	if req.Name == "" {
		respondBadRequest(w, "jornada name is required")
		return
	}
	if !req.EndsAt.After(req.StartsAt) {
		respondBadRequest(w, "jornada must end after it starts")
		return
	}

	jornada, err := h.groupService.AddJornada(r.Context(), groupID, req.Name, req.StartsAt, req.EndsAt)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, jornada)
}
