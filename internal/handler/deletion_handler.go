package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
)

// RequestDelete регистрирует удаление; запись удаляется только после подтверждения
func (h *Handler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	c, err := pathCollection(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	active := c.View()
	if v := r.URL.Query().Get("view"); v != "" {
		active = domain.ParseView(v)
	}

	pending, err := h.deletionService.RequestDelete(r.Context(), c, id, active)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, domainPendingToHTTP(pending))
}

func (h *Handler) CompleteDelete(w http.ResponseWriter, r *http.Request) {
	var req CompleteDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("body must be {\"confirm\": bool}"))
		return
	}

	page, err := h.deletionService.CompleteDelete(r.Context(), r.PathValue("token"), req.Confirm)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
