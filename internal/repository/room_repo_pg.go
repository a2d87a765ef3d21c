package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrRoomNumberExists is returned when creating a room with a number
// already taken.
var ErrRoomNumberExists = errors.New("room number already exists")

type CreateRoomInput struct {
	RoomNumber  string
	Type        string
	Price       float64
	Description string
}

type UpdateRoomInput struct {
	ID          int64
	Type        string
	Price       float64
	Description string
}

type RoomRepository interface {
	ListAvailable(ctx context.Context) ([]domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	IDByRoomNumber(ctx context.Context, roomNumber string) (int64, error)
	Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	Update(ctx context.Context, input UpdateRoomInput) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

type PGRoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) RoomRepository {
	return &PGRoomRepository{db: db}
}

const roomColumns = `id, room_number, type, price, status, description`

func (r *PGRoomRepository) ListAvailable(ctx context.Context) ([]domain.Room, error) {
	return r.listWhere(ctx, `WHERE status='available'`)
}

func (r *PGRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	return r.listWhere(ctx, ``)
}

func (r *PGRoomRepository) listWhere(ctx context.Context, where string) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms `+where+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.RoomNumber, &room.Type, &room.Price, &room.Status, &room.Description); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *PGRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	err := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id=$1`, id).
		Scan(&room.ID, &room.RoomNumber, &room.Type, &room.Price, &room.Status, &room.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return &room, nil
}

func (r *PGRoomRepository) IDByRoomNumber(ctx context.Context, roomNumber string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM rooms WHERE room_number=$1`, roomNumber).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("room id by number: %w", err)
	}
	return id, nil
}

func (r *PGRoomRepository) Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error) {
	room := &domain.Room{
		RoomNumber:  input.RoomNumber,
		Type:        input.Type,
		Price:       input.Price,
		Status:      domain.RoomStatusAvailable,
		Description: input.Description,
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO rooms (room_number, type, price, status, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		room.RoomNumber, room.Type, room.Price, room.Status, room.Description,
	).Scan(&room.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrRoomNumberExists
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}
	return room, nil
}

func (r *PGRoomRepository) Update(ctx context.Context, input UpdateRoomInput) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE rooms SET type=$1, price=$2, description=$3 WHERE id=$4`,
		input.Type, input.Price, input.Description, input.ID,
	)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRoomRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus is the admin escape hatch; normal occupancy flips happen
// inside the booking and lifecycle transactions.
func (r *PGRoomRepository) SetStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	cmd, err := r.db.Exec(ctx, `UPDATE rooms SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return fmt.Errorf("update room status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ RoomRepository = (*PGRoomRepository)(nil)
