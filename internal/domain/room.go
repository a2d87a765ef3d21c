package domain

type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusOccupied  RoomStatus = "occupied"
)

type Room struct {
	ID          int64
	RoomNumber  string
	Type        string
	Price       float64
	Status      RoomStatus
	Description string
}
