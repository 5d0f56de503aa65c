package web

import (
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/campushub/clubhub/server/database"
)

type IndexVars struct {
	Page
	Events []Event
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := identityFromRequest(r)

	var (
		events     []database.EventWithRegistrations
		registered map[string]bool
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		events, err = h.Hub.Registry.Events(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		registered, err = h.Hub.Ledger.EventIDsForUser(egCtx, identity.Username)
		return err
	})
	if err := eg.Wait(); err != nil {
		slog.ErrorContext(ctx, "Failed to load events", slog.String("error", err.Error()))
		http.Error(w, "Failed to load events", http.StatusInternalServerError)
		return
	}

	webEvents := make([]Event, 0, len(events))
	for _, event := range events {
		webEvents = append(webEvents, newEvent(event,
			registered[event.ID],
			h.Hub.Registry.CanModify(identity, event.CreatedBy),
		))
	}

	if err := h.Templates().ExecuteTemplate(w, "index.gohtml", IndexVars{
		Page:   h.newPage(w, r),
		Events: webEvents,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render index template", slog.String("error", err.Error()))
	}
}
