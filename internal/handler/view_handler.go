package handler

import (
	"net/http"
	"strconv"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
)

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	page := view.Render(domain.ParseView(r.PathValue("view")), h.state.Snapshot())
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	c, err := pathCollection(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var id *int
	if raw := r.URL.Query().Get("id"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.handleError(w, domain.NewBadRequestError("id must be an integer"))
			return
		}
		id = &n
	}

	form, err := view.Form(h.state.Snapshot(), c, id)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	c, err := pathCollection(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	records, err := h.state.GetAll(c)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
