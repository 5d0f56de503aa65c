package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/campushub/clubhub/internal/xio"
	"github.com/campushub/clubhub/server/database"
	"github.com/campushub/clubhub/server/hub"
)

type NewEventVars struct {
	Page
	Clubs []Club
}

func (h *handler) NewEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clubs, err := h.Hub.Registry.Clubs(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load clubs", slog.String("error", err.Error()))
		http.Error(w, "Failed to load clubs", http.StatusInternalServerError)
		return
	}

	webClubs := make([]Club, 0, len(clubs))
	for _, club := range clubs {
		webClubs = append(webClubs, newClub(club, false))
	}

	if err = h.Templates().ExecuteTemplate(w, "event_new.gohtml", NewEventVars{
		Page:  h.newPage(w, r),
		Clubs: webClubs,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render event form template", slog.String("error", err.Error()))
	}
}

func (h *handler) DoNewEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := identityFromRequest(r)

	event := database.Event{
		Title:       r.FormValue("title"),
		ClubName:    r.FormValue("club_name"),
		Type:        r.FormValue("type"),
		Date:        r.FormValue("date"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
	}

	if _, err := h.Hub.Registry.CreateEvent(ctx, identity, event); err != nil {
		if errors.Is(err, hub.ErrMissingField) {
			setFlash(w, "error", "Please fill in all required fields.")
		} else {
			slog.ErrorContext(ctx, "Failed to create event", slog.String("error", err.Error()))
			setFlash(w, "error", "Failed to create event. Please try again.")
		}
		http.Redirect(w, r, "/events/new", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Event created!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := identityFromRequest(r)

	eventID := r.PathValue("event_id")

	if err := h.Hub.Registry.DeleteEvent(ctx, identity, eventID); err != nil {
		if errors.Is(err, hub.ErrForbidden) {
			setFlash(w, "error", "Authorization failed or event not found.")
		} else {
			slog.ErrorContext(ctx, "Failed to delete event", slog.String("event_id", eventID), slog.String("error", err.Error()))
			setFlash(w, "error", "Failed to delete event. Please try again.")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Event deleted successfully.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EventQR serves a PNG QR code pointing at the event on the public site,
// for sharing on campus posters.
func (h *handler) EventQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID := r.PathValue("event_id")

	event, err := h.Hub.Registry.Event(ctx, eventID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		slog.ErrorContext(ctx, "Failed to get event", slog.String("event_id", eventID), slog.String("error", err.Error()))
		http.Error(w, "Failed to get event", http.StatusInternalServerError)
		return
	}

	qr, err := qrcode.New(h.Cfg.Server.PublicURL + "/#event-" + event.ID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create qrcode", slog.String("error", err.Error()))
		http.Error(w, "Failed to create qrcode", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")

	qrW := standard.NewWithWriter(xio.NewResponseWriteCloser(w),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	defer func() {
		_ = qrW.Close()
	}()
	if err = qr.Save(qrW); err != nil {
		slog.ErrorContext(ctx, "Failed to save qrcode", slog.String("error", err.Error()))
	}
}
