package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Daniyal1234-alt/hotelops/api"
	"github.com/Daniyal1234-alt/hotelops/config"
	"github.com/Daniyal1234-alt/hotelops/internal/service/auth"
	"github.com/Daniyal1234-alt/hotelops/internal/service/booking"
	"github.com/Daniyal1234-alt/hotelops/internal/service/feedback"
	"github.com/Daniyal1234-alt/hotelops/internal/service/rooms"
	"github.com/Daniyal1234-alt/hotelops/internal/service/users"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Auth     auth.AuthUseCase
	Rooms    rooms.RoomUseCase
	Bookings booking.BookingUseCase
	Users    users.UserUseCase
	Feedback feedback.FeedbackUseCase
}

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, svcs Services) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(svcs),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter assembles the gin engine. Auth routes sit at the root, the
// rest under /api, mirroring the public route layout the frontend
// expects.
func NewRouter(svcs Services) *gin.Engine {
	router := gin.Default()

	root := router.Group("/")
	api.NewAuthHandler(svcs.Auth).Register(root)

	apiGroup := router.Group("/api")
	api.NewRoomHandler(svcs.Rooms).Register(apiGroup)
	api.NewBookingHandler(svcs.Bookings).Register(apiGroup)
	api.NewUserHandler(svcs.Users).Register(apiGroup)
	api.NewStaffHandler(svcs.Users).Register(apiGroup)
	api.NewFeedbackHandler(svcs.Feedback).Register(apiGroup)

	return router
}
