package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrRoomUnavailable is returned when no room of the requested type is free.
var ErrRoomUnavailable = errors.New("room not available")

// ErrDateConflict is returned when the requested dates collide with an
// existing non-cancelled booking on the same room.
var ErrDateConflict = errors.New("room already booked for selected dates")

// ErrNoTransition is returned when a guarded status update affected no
// rows: the booking does not exist or is not in a state the transition
// allows. The two causes are deliberately not distinguished.
var ErrNoTransition = errors.New("booking not found or not in required status")

type ReserveInput struct {
	UserID        int64
	RoomType      string
	Stay          domain.Stay
	PaymentMethod string
}

type UpdateBookingInput struct {
	BookingID     int64
	RoomID        int64
	Stay          domain.Stay
	PaymentMethod string
}

type BookingRepository interface {
	Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error)
	Update(ctx context.Context, input UpdateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)
	CheckIn(ctx context.Context, id int64) (*domain.Booking, error)
	CheckOut(ctx context.Context, id int64) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.BookingSummary, error)
	History(ctx context.Context) ([]domain.BookingHistoryEntry, error)
	Confirmed(ctx context.Context) ([]domain.BookingHistoryEntry, error)
	Report(ctx context.Context) ([]domain.BookingReportEntry, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, reference, user_id, room_id, check_in, check_out, status, payment_method, total_price, created_at`

// Reserve books one available room of the requested type inside a single
// transaction. The FOR UPDATE lock on the selected room row serializes
// concurrent attempts on the same room, so the overlap check and the
// insert cannot interleave with another booking: two requests for
// overlapping dates on one room can never both commit.
func (r *PGBookingRepository) Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin reserve: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lowest id wins among equally eligible rooms; deterministic on purpose.
	var roomID int64
	var price float64
	err = tx.QueryRow(ctx,
		`SELECT id, price FROM rooms WHERE type=$1 AND status=$2 ORDER BY id LIMIT 1 FOR UPDATE`,
		input.RoomType, domain.RoomStatusAvailable,
	).Scan(&roomID, &price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomUnavailable
		}
		return nil, fmt.Errorf("select room: %w", err)
	}

	conflict, err := hasOverlap(ctx, tx, roomID, 0, input.Stay)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrDateConflict
	}

	booking := &domain.Booking{
		Reference:     uuid.NewString(),
		UserID:        input.UserID,
		RoomID:        roomID,
		CheckIn:       input.Stay.CheckIn,
		CheckOut:      input.Stay.CheckOut,
		Status:        domain.BookingStatusConfirmed,
		PaymentMethod: input.PaymentMethod,
		TotalPrice:    input.Stay.TotalPrice(price),
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO bookings (reference, user_id, room_id, check_in, check_out, status, payment_method, total_price)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		booking.Reference, booking.UserID, booking.RoomID, booking.CheckIn, booking.CheckOut,
		booking.Status, booking.PaymentMethod, booking.TotalPrice,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE rooms SET status=$1 WHERE id=$2`,
		domain.RoomStatusOccupied, roomID,
	); err != nil {
		return nil, fmt.Errorf("occupy room: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit reserve: %w", err)
	}
	return booking, nil
}

// hasOverlap evaluates the half-open overlap predicate against the
// non-cancelled bookings of a room. Callers must hold the room's row
// lock; the predicate itself lives on domain.Stay. excludeID skips the
// booking being modified.
func hasOverlap(ctx context.Context, tx pgx.Tx, roomID, excludeID int64, stay domain.Stay) (bool, error) {
	rows, err := tx.Query(ctx,
		`SELECT check_in, check_out FROM bookings WHERE room_id=$1 AND id<>$2 AND status<>$3`,
		roomID, excludeID, domain.BookingStatusCancelled,
	)
	if err != nil {
		return false, fmt.Errorf("load bookings for overlap check: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var existing domain.Stay
		if err := rows.Scan(&existing.CheckIn, &existing.CheckOut); err != nil {
			return false, fmt.Errorf("scan booking dates: %w", err)
		}
		if stay.Overlaps(existing) {
			return true, nil
		}
	}
	return false, rows.Err()
}

// Update moves a booking to a (possibly different) room and date range,
// re-validating overlap and re-pricing against the target room's nightly
// rate inside one transaction.
func (r *PGBookingRepository) Update(ctx context.Context, input UpdateBookingInput) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback(ctx)

	var price float64
	err = tx.QueryRow(ctx, `SELECT price FROM rooms WHERE id=$1 FOR UPDATE`, input.RoomID).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select room: %w", err)
	}

	conflict, err := hasOverlap(ctx, tx, input.RoomID, input.BookingID, input.Stay)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrDateConflict
	}

	row := tx.QueryRow(ctx,
		`UPDATE bookings SET room_id=$1, check_in=$2, check_out=$3, payment_method=$4, total_price=$5
		 WHERE id=$6
		 RETURNING `+bookingColumns,
		input.RoomID, input.Stay.CheckIn, input.Stay.CheckOut, input.PaymentMethod,
		input.Stay.TotalPrice(price), input.BookingID,
	)
	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return booking, nil
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

// Cancel is the guarded confirmed→cancelled transition. The conditional
// update is the guard: zero rows affected means not found or not
// cancellable, reported as one outcome. The freed room flips back to
// available in the same transaction.
func (r *PGBookingRepository) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.transition(ctx, id, domain.BookingStatusCancelled, true, domain.BookingStatusConfirmed)
}

// CheckIn is the guarded confirmed→checked-in transition. The room stays
// occupied.
func (r *PGBookingRepository) CheckIn(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.transition(ctx, id, domain.BookingStatusCheckedIn, false, domain.BookingStatusConfirmed)
}

// CheckOut transitions to checked-out from checked-in, and also directly
// from confirmed: the walk-in checkout shortcut is intentional behavior,
// not an oversight. Frees the room.
func (r *PGBookingRepository) CheckOut(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.transition(ctx, id, domain.BookingStatusCheckedOut, true,
		domain.BookingStatusCheckedIn, domain.BookingStatusConfirmed)
}

func (r *PGBookingRepository) transition(ctx context.Context, id int64, to domain.BookingStatus, freeRoom bool, from ...domain.BookingStatus) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin transition: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`UPDATE bookings SET status=$1 WHERE id=$2 AND status=ANY($3)
		 RETURNING `+bookingColumns,
		to, id, statusStrings(from),
	)
	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoTransition
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	if freeRoom {
		if _, err := tx.Exec(ctx,
			`UPDATE rooms SET status=$1 WHERE id=$2`,
			domain.RoomStatusAvailable, booking.RoomID,
		); err != nil {
			return nil, fmt.Errorf("release room: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transition: %w", err)
	}
	return booking, nil
}

func (r *PGBookingRepository) ListForUser(ctx context.Context, userID int64) ([]domain.BookingSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, r.room_number, b.check_in, b.check_out, b.status,
		        EXISTS (SELECT 1 FROM feedback f WHERE f.booking_id = b.id)
		 FROM bookings b
		 JOIN rooms r ON b.room_id = r.id
		 WHERE b.user_id = $1
		 ORDER BY b.check_in`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var out []domain.BookingSummary
	for rows.Next() {
		var s domain.BookingSummary
		if err := rows.Scan(&s.ID, &s.RoomNumber, &s.CheckIn, &s.CheckOut, &s.Status, &s.HasFeedback); err != nil {
			return nil, fmt.Errorf("scan booking summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGBookingRepository) History(ctx context.Context) ([]domain.BookingHistoryEntry, error) {
	return r.historyWhere(ctx, ``)
}

func (r *PGBookingRepository) Confirmed(ctx context.Context) ([]domain.BookingHistoryEntry, error) {
	return r.historyWhere(ctx, `WHERE b.status <> 'cancelled'`)
}

func (r *PGBookingRepository) historyWhere(ctx context.Context, where string) ([]domain.BookingHistoryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, u.name, r.room_number, b.check_in, b.check_out, b.status,
		        EXISTS (SELECT 1 FROM feedback f WHERE f.booking_id = b.id)
		 FROM bookings b
		 JOIN rooms r ON b.room_id = r.id
		 JOIN users u ON b.user_id = u.id `+where+`
		 ORDER BY b.check_in DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("booking history: %w", err)
	}
	defer rows.Close()

	var out []domain.BookingHistoryEntry
	for rows.Next() {
		var e domain.BookingHistoryEntry
		if err := rows.Scan(&e.ID, &e.CustomerName, &e.RoomNumber, &e.CheckIn, &e.CheckOut, &e.Status, &e.HasFeedback); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PGBookingRepository) Report(ctx context.Context) ([]domain.BookingReportEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, COALESCE(u.name, ''), COALESCE(r.room_number, ''), b.check_in, b.check_out,
		        b.status, b.payment_method, b.total_price, b.created_at
		 FROM bookings b
		 LEFT JOIN rooms r ON b.room_id = r.id
		 LEFT JOIN users u ON b.user_id = u.id
		 ORDER BY b.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("bookings report: %w", err)
	}
	defer rows.Close()

	var out []domain.BookingReportEntry
	for rows.Next() {
		var e domain.BookingReportEntry
		if err := rows.Scan(&e.ID, &e.CustomerName, &e.RoomNumber, &e.CheckIn, &e.CheckOut,
			&e.Status, &e.PaymentMethod, &e.TotalPrice, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.Reference, &b.UserID, &b.RoomID, &b.CheckIn, &b.CheckOut,
		&b.Status, &b.PaymentMethod, &b.TotalPrice, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

var _ BookingRepository = (*PGBookingRepository)(nil)
