package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SeedSampleData inserts a handful of starter clubs and events so a fresh
// install is not empty. Tables that already hold records are skipped.
func (d *Database) SeedSampleData(ctx context.Context) error {
	clubs, err := d.CountClubs(ctx)
	if err != nil {
		return err
	}
	if clubs == 0 {
		for _, club := range sampleClubs() {
			if err = d.InsertClub(ctx, club); err != nil {
				return fmt.Errorf("failed to seed club %q: %w", club.Name, err)
			}
		}
	}

	events, err := d.CountEvents(ctx)
	if err != nil {
		return err
	}
	if events == 0 {
		for _, event := range sampleEvents() {
			if err = d.InsertEvent(ctx, event); err != nil {
				return fmt.Errorf("failed to seed event %q: %w", event.Title, err)
			}
		}
	}

	return nil
}

func sampleClubs() []Club {
	return []Club{
		{
			Name:        "Campus Tech",
			Description: "Coding, gadgets, and all things tech. We host hackathons and workshops.",
			Leader:      "Alice System",
			Founded:     "2023-01-15",
			CreatedBy:   "system",
		},
		{
			Name:        "Drama Club",
			Description: "Theater, improv, and stage production. Come express yourself!",
			Leader:      "Bob System",
			Founded:     "2023-03-10",
			CreatedBy:   "system",
		},
		{
			Name:        "Green Earth",
			Description: "Sustainability initiatives and community gardening.",
			Leader:      "Charlie Green",
			Founded:     "2023-04-22",
			CreatedBy:   "system",
		},
	}
}

func sampleEvents() []Event {
	today := time.Now()
	date := func(days int) string {
		return today.AddDate(0, 0, days).Format("2006-01-02")
	}

	return []Event{
		{
			ID:          uuid.NewString(),
			Title:       "Mega Hackathon 2025",
			ClubName:    "Campus Tech",
			Type:        "Competition",
			Date:        date(14),
			Location:    "Engineering Block A",
			Description: "A 24-hour coding marathon. Build amazing projects and win prizes! Open to all majors.",
			CreatedBy:   "system",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Improv Comedy Night",
			ClubName:    "Drama Club",
			Type:        "Comedy",
			Date:        date(5),
			Location:    "Student Center Auditorium",
			Description: "Join us for a night of laughs! Audience participation is encouraged but not required.",
			CreatedBy:   "system",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Python Workshop",
			ClubName:    "Campus Tech",
			Type:        "Workshop",
			Date:        date(2),
			Location:    "Lab 304",
			Description: "Learn the basics of Python programming. No prior experience needed. Bring your laptop!",
			CreatedBy:   "system",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Community Garden Cleanup",
			ClubName:    "Green Earth",
			Type:        "Social",
			Date:        date(7),
			Location:    "North Garden",
			Description: "Help us prepare the garden for spring planting. Snacks provided!",
			CreatedBy:   "system",
		},
	}
}
