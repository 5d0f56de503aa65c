package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/campushub/clubhub/server/database"
	"github.com/campushub/clubhub/server/hub"
)

type ClubsVars struct {
	Page
	Clubs []Club
}

func (h *handler) Clubs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := identityFromRequest(r)

	clubs, err := h.Hub.Registry.Clubs(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load clubs", slog.String("error", err.Error()))
		http.Error(w, "Failed to load clubs", http.StatusInternalServerError)
		return
	}

	webClubs := make([]Club, 0, len(clubs))
	for _, club := range clubs {
		webClubs = append(webClubs, newClub(club, h.Hub.Registry.CanModify(identity, club.CreatedBy)))
	}

	if err = h.Templates().ExecuteTemplate(w, "clubs.gohtml", ClubsVars{
		Page:  h.newPage(w, r),
		Clubs: webClubs,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render clubs template", slog.String("error", err.Error()))
	}
}

func (h *handler) NewClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Templates().ExecuteTemplate(w, "club_new.gohtml", h.newPage(w, r)); err != nil {
		slog.ErrorContext(ctx, "Failed to render club form template", slog.String("error", err.Error()))
	}
}

func (h *handler) DoNewClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := identityFromRequest(r)

	club := database.Club{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Leader:      r.FormValue("leader"),
	}

	if _, err := h.Hub.Registry.CreateClub(ctx, identity, club); err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicateName):
			setFlash(w, "error", "Club name already exists!")
		case errors.Is(err, hub.ErrMissingField):
			setFlash(w, "error", "Please fill in all required fields.")
		default:
			slog.ErrorContext(ctx, "Failed to create club", slog.String("error", err.Error()))
			setFlash(w, "error", "Failed to register club. Please try again.")
		}
		http.Redirect(w, r, "/clubs/new", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Club registered!")
	http.Redirect(w, r, "/clubs", http.StatusSeeOther)
}

func (h *handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := identityFromRequest(r)

	name := r.PathValue("name")

	if err := h.Hub.Registry.DeleteClub(ctx, identity, name); err != nil {
		if errors.Is(err, hub.ErrForbidden) {
			setFlash(w, "error", "Authorization failed.")
		} else {
			slog.ErrorContext(ctx, "Failed to delete club", slog.String("club", name), slog.String("error", err.Error()))
			setFlash(w, "error", "Failed to delete club. Please try again.")
		}
		http.Redirect(w, r, "/clubs", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", fmt.Sprintf("Club %q deleted.", name))
	http.Redirect(w, r, "/clubs", http.StatusSeeOther)
}
