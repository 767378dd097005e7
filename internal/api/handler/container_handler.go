package handler

import (
	"encoding/json"
	"net/http"

	"lycosidae/internal/app/service"
	"lycosidae/internal/common"

	"github.com/go-chi/chi/v5"
)

type ContainerHandler struct {
	containerService *service.ContainerService
}

func NewContainerHandler(cs *service.ContainerService) *ContainerHandler {
	return &ContainerHandler{containerService: cs}
}

func (h *ContainerHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createContainer)
	r.Get("/{containerID}", h.getContainer)
	r.Put("/{containerID}", h.updateContainer)
	r.Delete("/{containerID}", h.deleteContainer)
}

func (h *ContainerHandler) createContainer(w http.ResponseWriter, r *http.Request) {
	var req service.ContainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	container, err := h.containerService.CreateContainer(r.Context(), req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, container)
}

func (h *ContainerHandler) getContainer(w http.ResponseWriter, r *http.Request) {
	container, err := h.containerService.GetContainer(r.Context(), chi.URLParam(r, "containerID"))
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, container)
}

func (h *ContainerHandler) updateContainer(w http.ResponseWriter, r *http.Request) {
	var req service.ContainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	container, err := h.containerService.UpdateContainer(r.Context(), chi.URLParam(r, "containerID"), req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, container)
}

func (h *ContainerHandler) deleteContainer(w http.ResponseWriter, r *http.Request) {
	if err := h.containerService.DeleteContainer(r.Context(), chi.URLParam(r, "containerID")); err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
