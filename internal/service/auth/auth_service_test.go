package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/Daniyal1234-alt/hotelops/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, name, email, passwordHash string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, name, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, name, email string) error {
	args := m.Called(ctx, id, name, email)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers, "secret", time.Hour)
	ctx := context.Background()

	created := &domain.User{ID: 1, Name: "Ada", Email: "ada@example.com", Role: domain.RoleGuest}
	mockUsers.On("Create", ctx, "Ada", "ada@example.com",
		mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")) == nil
		}), domain.RoleGuest).Return(created, nil).Once()

	user, err := service.Register(ctx, " Ada ", "Ada@Example.com", "s3cret")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	service := NewAuthService(&MockUserRepository{}, "secret", time.Hour)
	ctx := context.Background()

	testCases := []struct {
		name, userName, email, password string
	}{
		{"empty name", "", "ada@example.com", "pw"},
		{"empty email", "Ada", "", "pw"},
		{"empty password", "Ada", "ada@example.com", ""},
		{"whitespace name", "   ", "ada@example.com", "pw"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := service.Register(ctx, tc.userName, tc.email, tc.password)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers, "secret", time.Hour)
	ctx := context.Background()

	mockUsers.On("Create", ctx, "Ada", "ada@example.com", mock.Anything, domain.RoleGuest).
		Return(nil, repository.ErrEmailExists).Once()

	user, err := service.Register(ctx, "Ada", "ada@example.com", "pw")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrEmailExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers, "secret", time.Hour)
	ctx := context.Background()

	stored := &domain.User{
		ID:           7,
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: hashOf(t, "s3cret"),
		Role:         domain.RoleGuest,
	}
	mockUsers.On("GetByEmail", ctx, "ada@example.com").Return(stored, nil).Once()

	session, err := service.Login(ctx, "Ada@Example.com", "s3cret")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), session.User.ID)
	assert.NotEmpty(t, session.Token)
	// The plaintext path was not taken, so nothing was re-hashed.
	mockUsers.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers, "secret", time.Hour)
	ctx := context.Background()

	stored := &domain.User{ID: 7, Email: "ada@example.com", PasswordHash: hashOf(t, "s3cret")}
	mockUsers.On("GetByEmail", ctx, "ada@example.com").Return(stored, nil).Once()

	session, err := service.Login(ctx, "ada@example.com", "wrong")

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers, "secret", time.Hour)
	ctx := context.Background()

	mockUsers.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound).Once()

	session, err := service.Login(ctx, "ghost@example.com", "pw")

	assert.Nil(t, session)
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_LegacyPlaintextRehashed(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers, "secret", time.Hour)
	ctx := context.Background()

	stored := &domain.User{ID: 3, Email: "old@example.com", PasswordHash: "letmein"}
	mockUsers.On("GetByEmail", ctx, "old@example.com").Return(stored, nil).Once()
	mockUsers.On("UpdatePasswordHash", ctx, int64(3),
		mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("letmein")) == nil
		})).Return(nil).Once()

	session, err := service.Login(ctx, "old@example.com", "letmein")

	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	// The in-memory user now carries the migrated hash.
	assert.True(t, len(session.User.PasswordHash) > 2 && session.User.PasswordHash[:2] == "$2")
	mockUsers.AssertExpectations(t)
}

func TestAuthService_Login_LegacyPlaintextWrongPassword(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers, "secret", time.Hour)
	ctx := context.Background()

	stored := &domain.User{ID: 3, Email: "old@example.com", PasswordHash: "letmein"}
	mockUsers.On("GetByEmail", ctx, "old@example.com").Return(stored, nil).Once()

	session, err := service.Login(ctx, "old@example.com", "guess")

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	mockUsers.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewAuthService(mockUsers, "secret", 30*time.Minute)
	issuedAt := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issuedAt }
	ctx := context.Background()

	stored := &domain.User{
		ID:           7,
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: hashOf(t, "s3cret"),
		Role:         domain.RoleStaff,
	}
	mockUsers.On("GetByEmail", ctx, "ada@example.com").Return(stored, nil).Once()

	session, err := service.Login(ctx, "ada@example.com", "s3cret")
	assert.NoError(t, err)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(session.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return issuedAt }))

	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, issuedAt.Add(30*time.Minute).Unix(), claims.ExpiresAt.Unix())
}
