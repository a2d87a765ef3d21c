package rooms

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Daniyal1234-alt/hotelops/internal/domain"
	"github.com/Daniyal1234-alt/hotelops/internal/repository"
)

// ErrInvalidRoom is returned when a create or update request misses
// required fields or carries a non-positive price.
var ErrInvalidRoom = errors.New("room number, type, positive price and description are required")

// ErrInvalidStatus is returned for status values outside available/occupied.
var ErrInvalidStatus = errors.New("invalid room status")

type RoomUseCase interface {
	ListAvailable(ctx context.Context) ([]domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	IDByRoomNumber(ctx context.Context, roomNumber string) (int64, error)
	Create(ctx context.Context, input repository.CreateRoomInput) (*domain.Room, error)
	Update(ctx context.Context, input repository.UpdateRoomInput) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

type RoomCache interface {
	GetAvailableRooms(ctx context.Context) ([]domain.Room, error)
	SetAvailableRooms(ctx context.Context, rooms []domain.Room) error
	InvalidateAvailableRooms(ctx context.Context) error
}

type RoomService struct {
	repo  repository.RoomRepository
	cache RoomCache
}

func NewRoomService(repo repository.RoomRepository, cache RoomCache) *RoomService {
	return &RoomService{repo: repo, cache: cache}
}

// ListAvailable serves the availability listing cache-first. A stale
// cache is at worst a cosmetic problem: booking re-checks availability
// inside its own transaction.
func (s *RoomService) ListAvailable(ctx context.Context) ([]domain.Room, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAvailableRooms(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	rooms, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetAvailableRooms(ctx, rooms); err != nil {
			log.Printf("cache available rooms: %v", err)
		}
	}
	return rooms, nil
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	return s.repo.List(ctx)
}

func (s *RoomService) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoomService) IDByRoomNumber(ctx context.Context, roomNumber string) (int64, error) {
	return s.repo.IDByRoomNumber(ctx, roomNumber)
}

func (s *RoomService) Create(ctx context.Context, input repository.CreateRoomInput) (*domain.Room, error) {
	if strings.TrimSpace(input.RoomNumber) == "" || strings.TrimSpace(input.Type) == "" ||
		input.Price <= 0 || strings.TrimSpace(input.Description) == "" {
		return nil, ErrInvalidRoom
	}
	room, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, input repository.UpdateRoomInput) error {
	if strings.TrimSpace(input.Type) == "" || input.Price <= 0 || strings.TrimSpace(input.Description) == "" {
		return ErrInvalidRoom
	}
	if err := s.repo.Update(ctx, input); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *RoomService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *RoomService) SetStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	if status != domain.RoomStatusAvailable && status != domain.RoomStatusOccupied {
		return ErrInvalidStatus
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *RoomService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAvailableRooms(ctx); err != nil {
		log.Printf("invalidate rooms cache: %v", err)
	}
}

var _ RoomUseCase = (*RoomService)(nil)
