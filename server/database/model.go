package database

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	Username     string `db:"user_username"`
	PasswordHash string `db:"user_password_hash"`
	Role         string `db:"user_role"`
	CreatedAt    int64  `db:"user_created_at"`
}

type Club struct {
	Name        string `db:"club_name"`
	Description string `db:"club_description"`
	Leader      string `db:"club_leader"`
	Founded     string `db:"club_founded"`
	CreatedBy   string `db:"club_created_by"`
}

type Event struct {
	ID          string `db:"event_id"`
	Title       string `db:"event_title"`
	ClubName    string `db:"event_club_name"`
	Type        string `db:"event_type"`
	Date        string `db:"event_date"`
	Location    string `db:"event_location"`
	Description string `db:"event_description"`
	CreatedBy   string `db:"event_created_by"`
}

type EventWithRegistrations struct {
	Event
	Registrations int `db:"registrations"`
}

type Registration struct {
	EventID   string `db:"registration_event_id"`
	Username  string `db:"registration_username"`
	CreatedAt int64  `db:"registration_created_at"`
}

type Session struct {
	ID        string `db:"session_id"`
	Username  string `db:"session_username"`
	CreatedAt int64  `db:"session_created_at"`
	ExpiresAt int64  `db:"session_expires_at"`
}

type SessionWithUser struct {
	Session
	User
}
