package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobportal-dev/job-board/backend/internal/domain"
)

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	notifications, err := h.engine.ListByUser(r.Context(), myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "notifications fetched", notifications)
}

func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	count, err := h.engine.UnreadCount(r.Context(), myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "unread count fetched", map[string]int{"count": count})
}

// MarkAllRead is called when the user opens their notification panel; the
// whole list flips to read in one persist.
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if err := h.engine.MarkAllReadForUser(r.Context(), myInfo.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "notifications marked as read", nil)
}

// MarkOneRead flips a single notification to read. Absent ids and ids owned
// by another user are a silent no-op.
func (h *Handler) MarkOneRead(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	id := chi.URLParam(r, "id")

	if err := h.engine.MarkRead(r.Context(), myInfo.ID, id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "notification marked as read", nil)
}
