package models

// RoleType defines the application role of a user
type RoleType string

const (
	RoleStudent   RoleType = "student"
	RoleAdmin     RoleType = "admin"
	RoleOrganizer RoleType = "organizer"
	RoleClub      RoleType = "club"
)

// CanManageEvents reports whether the role may create or edit events.
func (r RoleType) CanManageEvents() bool {
	return r == RoleAdmin || r == RoleOrganizer || r == RoleClub
}

// EventStatus represents the registration status of an event
type EventStatus string

const (
	EventStatusOpen    EventStatus = "OPEN"
	EventStatusOngoing EventStatus = "ONGOING"
	EventStatusClosed  EventStatus = "CLOSED"
)

// ResourceType represents the kind of an event resource link
type ResourceType string

const (
	ResourceTypeLink   ResourceType = "Link"
	ResourceTypePDF    ResourceType = "PDF"
	ResourceTypeDeck   ResourceType = "Deck"
	ResourceTypeGithub ResourceType = "Github"
	ResourceTypeDrive  ResourceType = "Drive"
)

// ValidResourceType reports whether t is one of the known resource types.
func ValidResourceType(t ResourceType) bool {
	switch t {
	case ResourceTypeLink, ResourceTypePDF, ResourceTypeDeck, ResourceTypeGithub, ResourceTypeDrive:
		return true
	}
	return false
}

// PostType represents the kind of a feed post
type PostType string

const (
	PostTypeProject     PostType = "project"
	PostTypeStartupIdea PostType = "startup_idea"
	PostTypeWorkUpdate  PostType = "work_update"
)

// ValidPostType reports whether t is one of the known post types.
func ValidPostType(t PostType) bool {
	switch t {
	case PostTypeProject, PostTypeStartupIdea, PostTypeWorkUpdate:
		return true
	}
	return false
}

// PostStage represents the maturity stage of a project post
type PostStage string

const (
	StageIdeation PostStage = "Ideation"
	StageMVP      PostStage = "MVP"
	StageScaling  PostStage = "Scaling"
)

// StartupStatus represents the moderation status of a startup profile
type StartupStatus string

const (
	StartupStatusPending  StartupStatus = "PENDING"
	StartupStatusApproved StartupStatus = "APPROVED"
	StartupStatusRejected StartupStatus = "REJECTED"
)

// ApplicationStatus represents the status of an internship application
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "APPLIED"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
)
