package models

import (
	"time"
)

// Startup defines a startup profile based on the 'startups' table
type Startup struct {
	ID           int64         `json:"id" db:"id"`
	UserID       int64         `json:"userId" db:"user_id"`
	Name         string        `json:"name" db:"name"`
	Problem      string        `json:"problem" db:"problem"`
	Domain       string        `json:"domain" db:"domain"`
	Stage        string        `json:"stage" db:"stage"`
	Status       StartupStatus `json:"status" db:"status"`
	ReapplyAfter *time.Time    `json:"reapplyAfter,omitempty" db:"reapply_after"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`

	FounderName string `json:"founderName,omitempty"` // Joined from users
}

// Internship defines a job posting based on the 'internships' table
type Internship struct {
	ID                  int64      `json:"id" db:"id"`
	StartupID           int64      `json:"startupId" db:"startup_id"`
	RoleTitle           string     `json:"roleTitle" db:"role_title"`
	Description         string     `json:"description" db:"description"`
	Type                string     `json:"type" db:"internship_type"`
	Location            string     `json:"location" db:"location"`
	Stipend             *string    `json:"stipend,omitempty" db:"stipend"`
	Duration            *string    `json:"duration,omitempty" db:"duration"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty" db:"application_deadline"`
	ExternalLink        *string    `json:"externalLink,omitempty" db:"external_link"`
	CreatedAt           time.Time  `json:"createdAt" db:"created_at"`

	StartupName string `json:"startupName,omitempty"` // Joined from startups
}

// DeadlinePassed reports whether the posting no longer accepts applications.
func (i *Internship) DeadlinePassed(now time.Time) bool {
	return i.ApplicationDeadline != nil && now.After(*i.ApplicationDeadline)
}

// Application defines an internship application based on the
// 'internship_applications' table
type Application struct {
	ID           int64             `json:"id" db:"id"`
	InternshipID int64             `json:"internshipId" db:"internship_id"`
	ApplicantID  int64             `json:"applicantId" db:"applicant_id"`
	Status       ApplicationStatus `json:"status" db:"status"`
	CreatedAt    time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time         `json:"updatedAt" db:"updated_at"`

	ApplicantName string `json:"applicantName,omitempty"` // Joined from users
}
