package booking

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/Daniyal1234-alt/hotelops/internal/kafka"
	"github.com/Daniyal1234-alt/hotelops/internal/repository"
)

// ErrAccountNotRegistered is returned when the booking email has no
// account. Guests must register first; booking never auto-creates one.
var ErrAccountNotRegistered = errors.New("account not registered")

// ErrInvalidDateRange is returned for stays of zero or negative length.
var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// ErrMissingFields is returned when a required booking field is empty.
var ErrMissingFields = errors.New("missing required fields")

// Guard failures on lifecycle transitions. Each collapses "not found"
// and "wrong state" into one outcome; callers report and do not retry.
var (
	ErrNotCancellable  = errors.New("booking not found or already cancelled")
	ErrNotCheckinable  = errors.New("booking not found or not confirmed")
	ErrNotCheckoutable = errors.New("booking not found or not checked-in")
)

type BookingUseCase interface {
	Book(ctx context.Context, input BookRoomInput) (*domain.Booking, error)
	Update(ctx context.Context, input UpdateInput) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)
	CheckIn(ctx context.Context, id int64) (*domain.Booking, error)
	CheckOut(ctx context.Context, id int64) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.BookingSummary, error)
	History(ctx context.Context) ([]domain.BookingHistoryEntry, error)
	Confirmed(ctx context.Context) ([]domain.BookingHistoryEntry, error)
	Report(ctx context.Context) ([]domain.BookingReportEntry, error)
}

type Cache interface {
	InvalidateAvailableRooms(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	users              repository.UserRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type BookRoomInput struct {
	GuestEmail    string
	RoomType      string
	CheckIn       time.Time
	CheckOut      time.Time
	PaymentMethod string
}

type UpdateInput struct {
	BookingID     int64
	RoomID        int64
	CheckIn       time.Time
	CheckOut      time.Time
	PaymentMethod string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	users repository.UserRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		users:        users,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book turns a booking request into a priced, overlap-free reservation,
// or fails with no partial effect. The room selection, overlap check,
// priced insert and occupancy flip all commit atomically inside
// repository.Reserve; see that method for the serialization argument.
func (s *BookingService) Book(ctx context.Context, input BookRoomInput) (*domain.Booking, error) {
	if strings.TrimSpace(input.GuestEmail) == "" ||
		strings.TrimSpace(input.RoomType) == "" ||
		strings.TrimSpace(input.PaymentMethod) == "" ||
		input.CheckIn.IsZero() || input.CheckOut.IsZero() {
		return nil, ErrMissingFields
	}

	stay := domain.Stay{CheckIn: input.CheckIn, CheckOut: input.CheckOut}
	if stay.Nights() < 1 {
		return nil, ErrInvalidDateRange
	}

	guest, err := s.users.GetByEmail(ctx, input.GuestEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotRegistered
		}
		return nil, err
	}

	booking, err := s.bookings.Reserve(ctx, repository.ReserveInput{
		UserID:        guest.ID,
		RoomType:      input.RoomType,
		Stay:          stay,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateRooms(ctx)
	s.publish(ctx, "booking_confirmed", booking, guest.Email)
	return booking, nil
}

// Update moves an existing booking to new dates, room or payment method,
// re-validating overlap and re-pricing.
func (s *BookingService) Update(ctx context.Context, input UpdateInput) (*domain.Booking, error) {
	if input.RoomID == 0 || strings.TrimSpace(input.PaymentMethod) == "" ||
		input.CheckIn.IsZero() || input.CheckOut.IsZero() {
		return nil, ErrMissingFields
	}

	stay := domain.Stay{CheckIn: input.CheckIn, CheckOut: input.CheckOut}
	if stay.Nights() < 1 {
		return nil, ErrInvalidDateRange
	}

	return s.bookings.Update(ctx, repository.UpdateBookingInput{
		BookingID:     input.BookingID,
		RoomID:        input.RoomID,
		Stay:          stay,
		PaymentMethod: input.PaymentMethod,
	})
}

// Cancel applies the guarded confirmed→cancelled transition and frees
// the room.
func (s *BookingService) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoTransition) {
			return nil, ErrNotCancellable
		}
		return nil, err
	}

	s.invalidateRooms(ctx)
	s.publish(ctx, "booking_cancelled", booking, s.ownerEmail(ctx, booking))
	return booking, nil
}

// CheckIn applies the guarded confirmed→checked-in transition.
func (s *BookingService) CheckIn(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.CheckIn(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoTransition) {
			return nil, ErrNotCheckinable
		}
		return nil, err
	}

	s.publish(ctx, "booking_checked_in", booking, s.ownerEmail(ctx, booking))
	return booking, nil
}

// CheckOut applies the guarded transition to checked-out and frees the
// room. Checked-in and confirmed are both accepted; see the repository
// method for why.
func (s *BookingService) CheckOut(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.CheckOut(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoTransition) {
			return nil, ErrNotCheckoutable
		}
		return nil, err
	}

	s.invalidateRooms(ctx)
	s.publish(ctx, "booking_checked_out", booking, s.ownerEmail(ctx, booking))
	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]domain.BookingSummary, error) {
	return s.bookings.ListForUser(ctx, userID)
}

func (s *BookingService) History(ctx context.Context) ([]domain.BookingHistoryEntry, error) {
	return s.bookings.History(ctx)
}

func (s *BookingService) Confirmed(ctx context.Context) ([]domain.BookingHistoryEntry, error) {
	return s.bookings.Confirmed(ctx)
}

func (s *BookingService) Report(ctx context.Context) ([]domain.BookingReportEntry, error) {
	return s.bookings.Report(ctx)
}

func (s *BookingService) invalidateRooms(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAvailableRooms(ctx); err != nil {
		log.Printf("invalidate rooms cache: %v", err)
	}
}

func (s *BookingService) ownerEmail(ctx context.Context, booking *domain.Booking) string {
	owner, err := s.users.GetByID(ctx, booking.UserID)
	if err != nil {
		log.Printf("resolve booking owner %d: %v", booking.UserID, err)
		return ""
	}
	return owner.Email
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, email string) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		Reference:  booking.Reference,
		Email:      email,
		RoomID:     booking.RoomID,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		Status:     string(booking.Status),
		TotalPrice: booking.TotalPrice,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		log.Printf("publish %s event for booking %s: %v", eventType, booking.Reference, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event); err != nil {
			log.Printf("publish notification for booking %s: %v", booking.Reference, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
