package repositories

import (
	"github.com/campushub/backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	EventRepository        *EventRepository
	EventContentRepository *EventContentRepository
	TeamRepository         *TeamRepository
	JoinRequestRepository  *JoinRequestRepository
	ParticipantRepository  *ParticipantRepository
	PostRepository         *PostRepository
	StartupRepository      *StartupRepository
	InternshipRepository   *InternshipRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(database.Pool),
		TokenRepository:        NewTokenRepository(database.Pool),
		EventRepository:        NewEventRepository(database.Pool),
		EventContentRepository: NewEventContentRepository(database.Pool),
		TeamRepository:         NewTeamRepository(database),
		JoinRequestRepository:  NewJoinRequestRepository(database.Pool),
		ParticipantRepository:  NewParticipantRepository(database),
		PostRepository:         NewPostRepository(database),
		StartupRepository:      NewStartupRepository(database.Pool),
		InternshipRepository:   NewInternshipRepository(database.Pool),
		NotificationRepository: NewNotificationRepository(database.Pool),
	}
}
