package web

import (
	"log/slog"
	"net/http"
)

func (h *handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := identityFromRequest(r)

	eventID := r.PathValue("event_id")

	created, err := h.Hub.Ledger.Register(ctx, identity, eventID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to register", slog.String("event_id", eventID), slog.String("error", err.Error()))
		setFlash(w, "error", "Failed to register. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if created {
		setFlash(w, "success", "Successfully registered for the event!")
	} else {
		setFlash(w, "info", "You are already registered for this event.")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *handler) Unregister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := identityFromRequest(r)

	eventID := r.PathValue("event_id")

	if err := h.Hub.Ledger.Unregister(ctx, identity, eventID); err != nil {
		slog.ErrorContext(ctx, "Failed to unregister", slog.String("event_id", eventID), slog.String("error", err.Error()))
		setFlash(w, "error", "Failed to unregister. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "info", "Successfully unregistered from event.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
