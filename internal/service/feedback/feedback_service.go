package feedback

import (
	"context"
	"errors"
	"strings"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/Daniyal1234-alt/hotelops/internal/repository"
)

// ErrNotEligibleForFeedback is returned when the booking does not exist
// or has not been checked out yet. Feedback is gated on a completed stay.
var ErrNotEligibleForFeedback = errors.New("booking not found or not checked out")

// ErrInvalidRating is returned for ratings outside 1..5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ErrMissingFields is returned when a complaint misses a required field.
var ErrMissingFields = errors.New("user, booking, type and message are required")

type FeedbackUseCase interface {
	Submit(ctx context.Context, bookingID int64, rating int, comment string) (*domain.Feedback, error)
	ForBooking(ctx context.Context, bookingID int64) ([]domain.Feedback, error)
	ForRoom(ctx context.Context, roomID int64) ([]domain.Feedback, error)

	SubmitComplaint(ctx context.Context, userID, bookingID int64, complaintType, message string) (*domain.Complaint, error)
	OpenComplaints(ctx context.Context) ([]domain.ComplaintView, error)
	ResolveComplaint(ctx context.Context, id int64) error
}

type FeedbackService struct {
	feedback   repository.FeedbackRepository
	complaints repository.ComplaintRepository
	bookings   repository.BookingRepository
}

func NewFeedbackService(
	feedback repository.FeedbackRepository,
	complaints repository.ComplaintRepository,
	bookings repository.BookingRepository,
) *FeedbackService {
	return &FeedbackService{feedback: feedback, complaints: complaints, bookings: bookings}
}

// Submit stores feedback for a checked-out booking, attributed to the
// booking's owner.
func (s *FeedbackService) Submit(ctx context.Context, bookingID int64, rating int, comment string) (*domain.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotEligibleForFeedback
		}
		return nil, err
	}
	if booking.Status != domain.BookingStatusCheckedOut {
		return nil, ErrNotEligibleForFeedback
	}

	return s.feedback.Create(ctx, booking.UserID, bookingID, rating, comment)
}

func (s *FeedbackService) ForBooking(ctx context.Context, bookingID int64) ([]domain.Feedback, error) {
	return s.feedback.ForBooking(ctx, bookingID)
}

func (s *FeedbackService) ForRoom(ctx context.Context, roomID int64) ([]domain.Feedback, error) {
	return s.feedback.ForRoom(ctx, roomID)
}

// SubmitComplaint accepts complaints at any booking state.
func (s *FeedbackService) SubmitComplaint(ctx context.Context, userID, bookingID int64, complaintType, message string) (*domain.Complaint, error) {
	if userID == 0 || bookingID == 0 ||
		strings.TrimSpace(complaintType) == "" || strings.TrimSpace(message) == "" {
		return nil, ErrMissingFields
	}
	return s.complaints.Create(ctx, userID, bookingID, complaintType, message)
}

func (s *FeedbackService) OpenComplaints(ctx context.Context) ([]domain.ComplaintView, error) {
	return s.complaints.Open(ctx)
}

func (s *FeedbackService) ResolveComplaint(ctx context.Context, id int64) error {
	return s.complaints.Resolve(ctx, id)
}

var _ FeedbackUseCase = (*FeedbackService)(nil)
