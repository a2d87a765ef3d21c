package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/Daniyal1234-alt/hotelops/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ErrMissingFields is returned when a required administration field is
// empty or invalid.
var ErrMissingFields = errors.New("missing or invalid fields")

type UserUseCase interface {
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, name, email string) error
	Delete(ctx context.Context, id int64) error

	ListStaff(ctx context.Context) ([]domain.StaffMember, error)
	CreateStaff(ctx context.Context, input CreateStaffInput) (*domain.StaffMember, error)
	UpdateStaff(ctx context.Context, input UpdateStaffInput) error
	DeleteStaff(ctx context.Context, staffID int64) error
}

type CreateStaffInput struct {
	Name     string
	Email    string
	Password string
	Position string
	Salary   float64
	HireDate time.Time
}

type UpdateStaffInput struct {
	StaffID  int64
	UserID   int64
	Name     string
	Email    string
	Position string
	Salary   float64
	HireDate time.Time
}

type UserService struct {
	users repository.UserRepository
	staff repository.StaffRepository
}

func NewUserService(users repository.UserRepository, staff repository.StaffRepository) *UserService {
	return &UserService{users: users, staff: staff}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id int64, name, email string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return ErrMissingFields
	}
	return s.users.Update(ctx, id, name, email)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	return s.staff.List(ctx)
}

// CreateStaff provisions the user account and the staff record together.
// Staff get a real bcrypt credential from day one.
func (s *UserService) CreateStaff(ctx context.Context, input CreateStaffInput) (*domain.StaffMember, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Position) == "" || input.Salary < 0 || input.HireDate.IsZero() {
		return nil, ErrMissingFields
	}
	if input.Password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		return nil, fmt.Errorf("hash staff password: %w", err)
	}

	return s.staff.Create(ctx, repository.CreateStaffInput{
		Name:         input.Name,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		Position:     input.Position,
		Salary:       input.Salary,
		HireDate:     input.HireDate,
	})
}

func (s *UserService) UpdateStaff(ctx context.Context, input UpdateStaffInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Position) == "" || input.Salary < 0 {
		return ErrMissingFields
	}
	return s.staff.Update(ctx, repository.UpdateStaffInput{
		StaffID:  input.StaffID,
		UserID:   input.UserID,
		Name:     input.Name,
		Email:    input.Email,
		Position: input.Position,
		Salary:   input.Salary,
		HireDate: input.HireDate,
	})
}

func (s *UserService) DeleteStaff(ctx context.Context, staffID int64) error {
	return s.staff.Delete(ctx, staffID)
}

var _ UserUseCase = (*UserService)(nil)
