package models

import (
	"time"
)

// Event defines the event model based on the 'events' table
type Event struct {
	ID              int64       `json:"id" db:"id"`
	Title           string      `json:"title" db:"title"`
	Description     string      `json:"description" db:"description"`
	Location        string      `json:"location" db:"location"`
	OrganizerID     int64       `json:"organizerId" db:"organizer_id"`
	Status          EventStatus `json:"status" db:"status"`
	StartsAt        time.Time   `json:"startsAt" db:"starts_at"`
	EndsAt          time.Time   `json:"endsAt" db:"ends_at"`
	MinTeamSize     int         `json:"minTeamSize" db:"min_team_size"`
	MaxTeamSize     int         `json:"maxTeamSize" db:"max_team_size"`
	FormationLocked bool        `json:"formationLocked" db:"formation_locked"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`

	Milestones []Milestone `json:"milestones,omitempty"` // Relation, no db tag
}

// FormationOpen reports whether the team formation phase still accepts
// team creation, join requests and solo applications.
func (e *Event) FormationOpen() bool {
	return !e.FormationLocked && e.Status != EventStatusClosed
}

// Milestone defines a timeline entry based on the 'event_milestones' table
type Milestone struct {
	ID          int64     `json:"id" db:"id"`
	EventID     int64     `json:"eventId" db:"event_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	DueAt       time.Time `json:"dueAt" db:"due_at"`
	Position    int       `json:"position" db:"position"`
}

// Resource defines an event resource link based on the 'event_resources' table
type Resource struct {
	ID          int64        `json:"id" db:"id"`
	EventID     int64        `json:"eventId" db:"event_id"`
	Title       string       `json:"title" db:"title"`
	URL         string       `json:"url" db:"url"`
	Type        ResourceType `json:"type" db:"resource_type"`
	Description *string      `json:"description,omitempty" db:"description"`
	CreatedBy   int64        `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
}

// FAQ defines an event FAQ entry based on the 'event_faqs' table
type FAQ struct {
	ID        int64     `json:"id" db:"id"`
	EventID   int64     `json:"eventId" db:"event_id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
