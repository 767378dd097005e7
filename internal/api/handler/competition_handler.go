package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lycosidae/internal/app/service"
	"lycosidae/internal/common"

	"github.com/go-chi/chi/v5"
)

type CompetitionHandler struct {
	competitionService *service.CompetitionService
}

func NewCompetitionHandler(cs *service.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{competitionService: cs}
}

func (h *CompetitionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createCompetition)
	r.Get("/", h.getByInviteCode) // GET /api/v1/competitions?invite_code=...
	r.Get("/{competitionID}", h.getCompetition)
	r.Get("/{competitionID}/leaderboard", h.leaderboard)
	r.Put("/{competitionID}", h.updateCompetition)
	r.Delete("/{competitionID}", h.deleteCompetition)
}

func (h *CompetitionHandler) createCompetition(w http.ResponseWriter, r *http.Request) {
	var req service.CompetitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	comp, err := h.competitionService.CreateCompetition(r.Context(), req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, comp)
}

func (h *CompetitionHandler) getCompetition(w http.ResponseWriter, r *http.Request) {
	comp, err := h.competitionService.GetCompetition(r.Context(), chi.URLParam(r, "competitionID"))
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, comp)
}

func (h *CompetitionHandler) getByInviteCode(w http.ResponseWriter, r *http.Request) {
	comp, err := h.competitionService.GetCompetitionByInviteCode(r.Context(), r.URL.Query().Get("invite_code"))
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, comp)
}

func (h *CompetitionHandler) leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	standings, err := h.competitionService.Leaderboard(r.Context(), chi.URLParam(r, "competitionID"), limit)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, standings)
}

func (h *CompetitionHandler) updateCompetition(w http.ResponseWriter, r *http.Request) {
	var req service.CompetitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	comp, err := h.competitionService.UpdateCompetition(r.Context(), chi.URLParam(r, "competitionID"), req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, comp)
}

func (h *CompetitionHandler) deleteCompetition(w http.ResponseWriter, r *http.Request) {
	if err := h.competitionService.DeleteCompetition(r.Context(), chi.URLParam(r, "competitionID")); err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
