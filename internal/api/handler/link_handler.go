package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"lycosidae/internal/app/service"
	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

// LinkHandler exposes the six relationship kinds under one generic
// handler. Each kind gets a POST to create a pair (body fields are the
// kind's own, e.g. user_id/competition_id) and a DELETE addressed by
// the two references in path order.
type LinkHandler struct {
	linkService *service.LinkService
}

func NewLinkHandler(ls *service.LinkService) *LinkHandler {
	return &LinkHandler{linkService: ls}
}

func (h *LinkHandler) RegisterRoutes(r chi.Router) {
	for _, kind := range model.AllLinkKinds() {
		r.Route("/"+routeName(kind), h.kindRoutes(kind))
	}
}

// routeName maps e.g. user_competition to user-competitions.
func routeName(kind model.LinkKind) string {
	return strings.ReplaceAll(string(kind), "_", "-") + "s"
}

func (h *LinkHandler) kindRoutes(kind model.LinkKind) func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/", h.createLink(kind))
		r.Delete("/{leftID}/{rightID}", h.deleteLink(kind))
	}
}

func (h *LinkHandler) createLink(kind model.LinkKind) http.HandlerFunc {
	spec, _ := model.SpecFor(kind)
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
			return
		}

		leftID, rightID := body[spec.LeftField], body[spec.RightField]
		if leftID == "" || rightID == "" {
			common.RespondWithError(w, http.StatusBadRequest,
				fmt.Sprintf("both %s and %s are required", spec.LeftField, spec.RightField))
			return
		}

		link, err := h.linkService.CreateLink(r.Context(), kind, leftID, rightID)
		if err != nil {
			common.RespondFromError(w, err)
			return
		}
		common.RespondWithJSON(w, http.StatusCreated, linkResponse(spec, link))
	}
}

func (h *LinkHandler) deleteLink(kind model.LinkKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leftID := chi.URLParam(r, "leftID")
		rightID := chi.URLParam(r, "rightID")

		if err := h.linkService.DeleteLink(r.Context(), kind, leftID, rightID); err != nil {
			common.RespondFromError(w, err)
			return
		}
		common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// linkResponse renders a link with the kind's own field names, the way
// the relationship DTOs are shaped.
func linkResponse(spec model.LinkSpec, link *model.Link) map[string]any {
	return map[string]any{
		"id":            link.ID,
		spec.LeftField:  link.LeftID,
		spec.RightField: link.RightID,
		"created_at":    link.CreatedAt,
	}
}
