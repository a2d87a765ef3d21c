package repository

import (
	"context"
	"fmt"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedbackRepository interface {
	// Create stores feedback for a booking. userID must be the booking's
	// owner; the service layer resolves it while checking eligibility.
	Create(ctx context.Context, userID, bookingID int64, rating int, comment string) (*domain.Feedback, error)
	ForBooking(ctx context.Context, bookingID int64) ([]domain.Feedback, error)
	ForRoom(ctx context.Context, roomID int64) ([]domain.Feedback, error)
}

type ComplaintRepository interface {
	Create(ctx context.Context, userID, bookingID int64, complaintType, message string) (*domain.Complaint, error)
	Open(ctx context.Context) ([]domain.ComplaintView, error)
	Resolve(ctx context.Context, id int64) error
}

type PGFeedbackRepository struct {
	db *pgxpool.Pool
}

func NewFeedbackRepository(db *pgxpool.Pool) *PGFeedbackRepository {
	return &PGFeedbackRepository{db: db}
}

func (r *PGFeedbackRepository) Create(ctx context.Context, userID, bookingID int64, rating int, comment string) (*domain.Feedback, error) {
	fb := &domain.Feedback{UserID: userID, BookingID: bookingID, Rating: rating, Comment: comment}
	err := r.db.QueryRow(ctx,
		`INSERT INTO feedback (user_id, booking_id, rating, comment) VALUES ($1, $2, $3, $4)
		 RETURNING id, submitted_at`,
		userID, bookingID, rating, comment,
	).Scan(&fb.ID, &fb.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}
	return fb, nil
}

func (r *PGFeedbackRepository) ForBooking(ctx context.Context, bookingID int64) ([]domain.Feedback, error) {
	return r.list(ctx,
		`SELECT id, user_id, booking_id, rating, comment, submitted_at
		 FROM feedback WHERE booking_id=$1 ORDER BY submitted_at DESC`,
		bookingID,
	)
}

func (r *PGFeedbackRepository) ForRoom(ctx context.Context, roomID int64) ([]domain.Feedback, error) {
	return r.list(ctx,
		`SELECT f.id, f.user_id, f.booking_id, f.rating, f.comment, f.submitted_at
		 FROM feedback f
		 JOIN bookings b ON f.booking_id = b.id
		 WHERE b.room_id=$1 ORDER BY f.submitted_at DESC`,
		roomID,
	)
}

func (r *PGFeedbackRepository) list(ctx context.Context, query string, arg any) ([]domain.Feedback, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(&fb.ID, &fb.UserID, &fb.BookingID, &fb.Rating, &fb.Comment, &fb.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		out = append(out, fb)
	}
	return out, rows.Err()
}

var _ FeedbackRepository = (*PGFeedbackRepository)(nil)

type PGComplaintRepository struct {
	db *pgxpool.Pool
}

func NewComplaintRepository(db *pgxpool.Pool) *PGComplaintRepository {
	return &PGComplaintRepository{db: db}
}

func (r *PGComplaintRepository) Create(ctx context.Context, userID, bookingID int64, complaintType, message string) (*domain.Complaint, error) {
	c := &domain.Complaint{
		UserID:    userID,
		BookingID: bookingID,
		Type:      complaintType,
		Message:   message,
		Status:    domain.ComplaintStatusPending,
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO complaints (user_id, booking_id, type, message, status) VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		userID, bookingID, complaintType, message, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert complaint: %w", err)
	}
	return c, nil
}

func (r *PGComplaintRepository) Open(ctx context.Context) ([]domain.ComplaintView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, u.name, b.check_in, b.check_out, c.type, c.message, c.status
		 FROM complaints c
		 JOIN users u ON c.user_id = u.id
		 JOIN bookings b ON c.booking_id = b.id
		 WHERE c.status <> 'resolved'
		 ORDER BY c.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list open complaints: %w", err)
	}
	defer rows.Close()

	var out []domain.ComplaintView
	for rows.Next() {
		var v domain.ComplaintView
		if err := rows.Scan(&v.ID, &v.CustomerName, &v.CheckIn, &v.CheckOut, &v.Type, &v.Message, &v.Status); err != nil {
			return nil, fmt.Errorf("scan complaint: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PGComplaintRepository) Resolve(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE complaints SET status='resolved', resolved_at=now() WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("resolve complaint: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ComplaintRepository = (*PGComplaintRepository)(nil)
