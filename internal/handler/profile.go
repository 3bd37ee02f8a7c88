package handler

import (
	"errors"
	"net/http"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	h.successResponse(w, r, "profile fetched", sanitizeUser(myInfo))
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Name    string `json:"name" validate:"required"`
		Phone   string `json:"phone"`
		Company string `json:"company"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	updated, err := h.repository.UpdateProfile(myInfo.ID, req.Name, req.Phone, req.Company)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Built-in demo accounts live outside the persisted overlay.
			h.errorResponse(w, r, "demo accounts cannot be edited")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "profile updated", sanitizeUser(updated))
}
