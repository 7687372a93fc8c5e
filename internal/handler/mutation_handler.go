package handler

import (
	"context"
	"net/http"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/view"
)

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, nil, http.StatusCreated)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.save(w, r, &id, http.StatusOK)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, id *int, statusCode int) {
	c, err := pathCollection(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	form, err := httpRequestToForm(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	page, err := h.saveRecord(r.Context(), c, id, form)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, statusCode, page)
}

func (h *Handler) saveRecord(ctx context.Context, c domain.Collection, id *int, form domain.Form) (*view.Page, error) {
	switch c {
	case domain.CollectionTeams:
		return h.memberService.SaveMember(ctx, id, domain.NewMemberInput(form))
	case domain.CollectionProjects:
		return h.projectService.SaveProject(ctx, id, domain.NewProjectInput(form))
	default:
		in, err := domain.NewTaskInput(form)
		if err != nil {
			return nil, err
		}
		return h.taskService.SaveTask(ctx, id, in)
	}
}
