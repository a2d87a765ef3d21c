package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateStaffInput struct {
	Name         string
	Email        string
	PasswordHash string
	Position     string
	Salary       float64
	HireDate     time.Time
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

type StaffRepository interface {
	List(ctx context.Context) ([]domain.StaffMember, error)
	Create(ctx context.Context, input CreateStaffInput) (*domain.StaffMember, error)
	Update(ctx context.Context, input UpdateStaffInput) error
	Delete(ctx context.Context, staffID int64) error
}

type PGStaffRepository struct {
	db *pgxpool.Pool
}

func NewStaffRepository(db *pgxpool.Pool) StaffRepository {
	return &PGStaffRepository{db: db}
}

func (r *PGStaffRepository) List(ctx context.Context) ([]domain.StaffMember, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.user_id, u.name, u.email, s.position, s.salary, s.hire_date
		 FROM staff s
		 JOIN users u ON s.user_id = u.id
		 ORDER BY s.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var staff []domain.StaffMember
	for rows.Next() {
		var m domain.StaffMember
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Email, &m.Position, &m.Salary, &m.HireDate); err != nil {
			return nil, fmt.Errorf("scan staff member: %w", err)
		}
		staff = append(staff, m)
	}
	return staff, rows.Err()
}

// Create inserts the user row (role staff) and the staff row together.
func (r *PGStaffRepository) Create(ctx context.Context, input CreateStaffInput) (*domain.StaffMember, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin create staff: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id`,
		input.Name, input.Email, input.PasswordHash, domain.RoleStaff,
	).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("insert staff user: %w", err)
	}

	member := &domain.StaffMember{
		UserID:   userID,
		Name:     input.Name,
		Email:    input.Email,
		Position: input.Position,
		Salary:   input.Salary,
		HireDate: input.HireDate,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO staff (user_id, position, salary, hire_date) VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, input.Position, input.Salary, input.HireDate,
	).Scan(&member.ID)
	if err != nil {
		return nil, fmt.Errorf("insert staff record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create staff: %w", err)
	}
	return member, nil
}

func (r *PGStaffRepository) Update(ctx context.Context, input UpdateStaffInput) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin update staff: %w", err)
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `UPDATE users SET name=$1, email=$2 WHERE id=$3`,
		input.Name, input.Email, input.UserID)
	if err != nil {
		return fmt.Errorf("update staff user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	cmd, err = tx.Exec(ctx, `UPDATE staff SET position=$1, salary=$2, hire_date=$3 WHERE id=$4`,
		input.Position, input.Salary, input.HireDate, input.StaffID)
	if err != nil {
		return fmt.Errorf("update staff record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

// Delete removes the staff record and its backing user account.
func (r *PGStaffRepository) Delete(ctx context.Context, staffID int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin delete staff: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID int64
	err = tx.QueryRow(ctx, `DELETE FROM staff WHERE id=$1 RETURNING user_id`, staffID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete staff record: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id=$1`, userID); err != nil {
		return fmt.Errorf("delete staff user: %w", err)
	}

	return tx.Commit(ctx)
}

var _ StaffRepository = (*PGStaffRepository)(nil)
