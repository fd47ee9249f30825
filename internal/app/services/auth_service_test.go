package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

type mockAccountStore struct {
	mock.Mock
}

func (m *mockAccountStore) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockAccountStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockAccountStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockAccountStore) UpdateLastSeen(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockTokenStore struct {
	mock.Mock
}

func (m *mockTokenStore) CreateToken(ctx context.Context, token string, userID int64, expiresAt time.Time) error {
	args := m.Called(ctx, token, userID, expiresAt)
	return args.Error(0)
}

func (m *mockTokenStore) GetTokenByValue(ctx context.Context, token string) (int64, time.Time, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenStore) DeleteToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockTokenStore) DeleteTokensByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

const refreshTokenExp = 720 * time.Hour

func newAuthService(t *testing.T) (*authServiceImpl, *mockAccountStore, *mockTokenStore) {
	t.Helper()
	users := new(mockAccountStore)
	tokens := new(mockTokenStore)
	svc := &authServiceImpl{
		userRepo:  users,
		tokenRepo: tokens,
		jwtService: auth.NewJWTService(auth.JWTConfig{
			SecretKey:       "secret",
			AccessTokenExp:  time.Hour,
			RefreshTokenExp: refreshTokenExp,
		}),
		logger: zerolog.Nop(),
	}
	return svc, users, tokens
}

func activeUser(t *testing.T) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword("hunter22")
	require.NoError(t, err)
	return &models.User{
		ID:       7,
		Email:    "student@campus.edu",
		Password: hashed,
		RoleType: models.RoleStudent,
		IsActive: true,
	}
}

func TestLoginStoresRefreshTokenExpiry(t *testing.T) {
	svc, users, tokens := newAuthService(t)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "student@campus.edu").Return(activeUser(t), nil)
	users.On("UpdateLastSeen", ctx, int64(7)).Return(nil)

	var storedExpiry time.Time
	tokens.On("CreateToken", ctx, mock.Anything, int64(7), mock.Anything).
		Run(func(args mock.Arguments) {
			storedExpiry = args.Get(3).(time.Time)
		}).Return(nil)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "student@campus.edu", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// The stored expiry is one refresh window from now, not offset twice.
	assert.WithinDuration(t, time.Now().Add(refreshTokenExp), storedExpiry, 5*time.Second)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, tokens := newAuthService(t)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "student@campus.edu").Return(activeUser(t), nil)

	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "student@campus.edu", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, users, _ := newAuthService(t)
	ctx := context.Background()

	user := activeUser(t)
	user.IsActive = false
	users.On("GetByEmail", ctx, "student@campus.edu").Return(user, nil)

	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "student@campus.edu", Password: "hunter22"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRefreshTokenRotates(t *testing.T) {
	svc, users, tokens := newAuthService(t)
	ctx := context.Background()

	tokens.On("GetTokenByValue", ctx, "old-token").Return(int64(7), time.Now().Add(time.Hour), nil)
	users.On("GetByID", ctx, int64(7)).Return(activeUser(t), nil)
	tokens.On("DeleteToken", ctx, "old-token").Return(nil)
	tokens.On("CreateToken", ctx, mock.Anything, int64(7), mock.Anything).Return(nil)

	resp, err := svc.RefreshToken(ctx, "old-token")
	require.NoError(t, err)
	assert.NotEqual(t, "old-token", resp.RefreshToken)
	tokens.AssertExpectations(t)
}

func TestRefreshTokenExpired(t *testing.T) {
	svc, _, tokens := newAuthService(t)
	ctx := context.Background()

	tokens.On("GetTokenByValue", ctx, "stale-token").Return(int64(7), time.Now().Add(-time.Minute), nil)
	tokens.On("DeleteToken", ctx, "stale-token").Return(nil)

	_, err := svc.RefreshToken(ctx, "stale-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	tokens.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
