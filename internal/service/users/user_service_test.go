package users

import (
	"context"
	"testing"
	"time"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/Daniyal1234-alt/hotelops/internal/repository"
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

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) List(ctx context.Context) ([]domain.StaffMember, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) Create(ctx context.Context, input repository.CreateStaffInput) (*domain.StaffMember, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) Update(ctx context.Context, input repository.UpdateStaffInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockStaffRepository) Delete(ctx context.Context, staffID int64) error {
	args := m.Called(ctx, staffID)
	return args.Error(0)
}

func TestUserService_Update_Validation(t *testing.T) {
	service := NewUserService(&MockUserRepository{}, &MockStaffRepository{})
	ctx := context.Background()

	assert.ErrorIs(t, service.Update(ctx, 1, "", "ada@example.com"), ErrMissingFields)
	assert.ErrorIs(t, service.Update(ctx, 1, "Ada", "  "), ErrMissingFields)
}

func TestUserService_CreateStaff_HashesPassword(t *testing.T) {
	mockStaff := &MockStaffRepository{}
	service := NewUserService(&MockUserRepository{}, mockStaff)
	ctx := context.Background()

	hireDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	created := &domain.StaffMember{ID: 1, UserID: 9, Name: "Grace", Position: "receptionist", Salary: 3000}

	mockStaff.On("Create", ctx, mock.MatchedBy(func(input repository.CreateStaffInput) bool {
		return input.Email == "grace@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(input.PasswordHash), []byte("pw123")) == nil
	})).Return(created, nil).Once()

	staff, err := service.CreateStaff(ctx, CreateStaffInput{
		Name:     "Grace",
		Email:    " Grace@Example.com ",
		Password: "pw123",
		Position: "receptionist",
		Salary:   3000,
		HireDate: hireDate,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), staff.ID)
	mockStaff.AssertExpectations(t)
}

func TestUserService_CreateStaff_Validation(t *testing.T) {
	service := NewUserService(&MockUserRepository{}, &MockStaffRepository{})
	ctx := context.Background()

	valid := CreateStaffInput{
		Name:     "Grace",
		Email:    "grace@example.com",
		Password: "pw123",
		Position: "receptionist",
		Salary:   3000,
		HireDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name   string
		mutate func(*CreateStaffInput)
	}{
		{"empty name", func(i *CreateStaffInput) { i.Name = "" }},
		{"empty email", func(i *CreateStaffInput) { i.Email = "" }},
		{"empty password", func(i *CreateStaffInput) { i.Password = "" }},
		{"empty position", func(i *CreateStaffInput) { i.Position = " " }},
		{"negative salary", func(i *CreateStaffInput) { i.Salary = -1 }},
		{"zero hire date", func(i *CreateStaffInput) { i.HireDate = time.Time{} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			staff, err := service.CreateStaff(ctx, input)
			assert.Nil(t, staff)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestUserService_DeleteStaff(t *testing.T) {
	mockStaff := &MockStaffRepository{}
	service := NewUserService(&MockUserRepository{}, mockStaff)
	ctx := context.Background()

	mockStaff.On("Delete", ctx, int64(4)).Return(nil).Once()

	assert.NoError(t, service.DeleteStaff(ctx, 4))
	mockStaff.AssertExpectations(t)
}
