package web

import (
	"fmt"
	"net/http"

	"github.com/campushub/clubhub/server/auth"
	"github.com/campushub/clubhub/server/database"
	"github.com/campushub/clubhub/server/hub"
)

// Page carries the data every template needs: the navigation state and
// any flash messages queued by the previous request.
type Page struct {
	Username string
	LoggedIn bool
	Flashes  []Flash
}

func (h *handler) newPage(w http.ResponseWriter, r *http.Request) Page {
	identity := identityFromRequest(r)
	return Page{
		Username: identity.Username,
		LoggedIn: identity.Username != "",
		Flashes:  popFlashes(w, r),
	}
}

func identityFromRequest(r *http.Request) hub.Identity {
	session, ok := auth.GetSession(r)
	if !ok {
		return hub.Identity{}
	}
	return hub.Identity{
		Username: session.User.Username,
		Role:     session.User.Role,
	}
}

func newEvent(event database.EventWithRegistrations, registered bool, canDelete bool) Event {
	return Event{
		ID:            event.ID,
		Title:         event.Title,
		ClubName:      event.ClubName,
		Type:          event.Type,
		Date:          event.Date,
		Location:      event.Location,
		Description:   event.Description,
		Registrations: event.Registrations,
		Registered:    registered,
		CanDelete:     canDelete,
		QRURL:         fmt.Sprintf("/events/%s/qr", event.ID),
	}
}

type Event struct {
	ID            string
	Title         string
	ClubName      string
	Type          string
	Date          string
	Location      string
	Description   string
	Registrations int
	Registered    bool
	CanDelete     bool
	QRURL         string
}

func newClub(club database.Club, canDelete bool) Club {
	return Club{
		Name:        club.Name,
		Description: club.Description,
		Leader:      club.Leader,
		Founded:     club.Founded,
		CanDelete:   canDelete,
	}
}

type Club struct {
	Name        string
	Description string
	Leader      string
	Founded     string
	CanDelete   bool
}
