package handler

import (
	"encoding/json"
	"net/http"

	"lycosidae/internal/app/service"
	"lycosidae/internal/common"

	"github.com/go-chi/chi/v5"
)

type TagHandler struct {
	tagService *service.TagService
}

func NewTagHandler(ts *service.TagService) *TagHandler {
	return &TagHandler{tagService: ts}
}

func (h *TagHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createTag)
	r.Get("/", h.getByType) // GET /api/v1/tags?type=...
	r.Get("/{tagID}", h.getTag)
	r.Put("/{tagID}", h.updateTag)
	r.Delete("/{tagID}", h.deleteTag)
}

func (h *TagHandler) createTag(w http.ResponseWriter, r *http.Request) {
	var req service.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	tag, err := h.tagService.CreateTag(r.Context(), req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, tag)
}

func (h *TagHandler) getTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.tagService.GetTag(r.Context(), chi.URLParam(r, "tagID"))
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, tag)
}

func (h *TagHandler) getByType(w http.ResponseWriter, r *http.Request) {
	tag, err := h.tagService.GetTagByType(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, tag)
}

func (h *TagHandler) updateTag(w http.ResponseWriter, r *http.Request) {
	var req service.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	tag, err := h.tagService.UpdateTag(r.Context(), chi.URLParam(r, "tagID"), req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, tag)
}

func (h *TagHandler) deleteTag(w http.ResponseWriter, r *http.Request) {
	if err := h.tagService.DeleteTag(r.Context(), chi.URLParam(r, "tagID")); err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
