package email

import (
	"context"
	"log"

	"github.com/Daniyal1234-alt/hotelops/internal/kafka"
)

// Sender is the notification sink for the worker. It logs the outgoing
// message; wiring a real SMTP provider is a deployment concern.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("send email to %s: %s for booking %s (room %d, %s - %s)",
		event.Email, event.Type, event.Reference, event.RoomID,
		event.CheckIn.Format("2006-01-02"), event.CheckOut.Format("2006-01-02"))
	return nil
}
