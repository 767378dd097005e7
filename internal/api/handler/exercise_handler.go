package handler

import (
	"encoding/json"
	"net/http"

	"lycosidae/internal/app/service"
	"lycosidae/internal/common"

	"github.com/go-chi/chi/v5"
)

type ExerciseHandler struct {
	exerciseService *service.ExerciseService
}

func NewExerciseHandler(es *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: es}
}

func (h *ExerciseHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createExercise)
	r.Get("/{exerciseID}", h.getExercise)
	r.Put("/{exerciseID}", h.updateExercise)
	r.Delete("/{exerciseID}", h.deleteExercise)
}

func (h *ExerciseHandler) createExercise(w http.ResponseWriter, r *http.Request) {
	var req service.ExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.CreateExercise(r.Context(), req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, exercise)
}

func (h *ExerciseHandler) getExercise(w http.ResponseWriter, r *http.Request) {
	exercise, err := h.exerciseService.GetExercise(r.Context(), chi.URLParam(r, "exerciseID"))
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, exercise)
}

func (h *ExerciseHandler) updateExercise(w http.ResponseWriter, r *http.Request) {
	var req service.ExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(r.Context(), chi.URLParam(r, "exerciseID"), req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, exercise)
}

func (h *ExerciseHandler) deleteExercise(w http.ResponseWriter, r *http.Request) {
	if err := h.exerciseService.DeleteExercise(r.Context(), chi.URLParam(r, "exerciseID")); err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
