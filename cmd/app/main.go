package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Daniyal1234-alt/hotelops/config"
	"github.com/Daniyal1234-alt/hotelops/internal/bootstrap"
	"github.com/Daniyal1234-alt/hotelops/internal/cache"
	"github.com/Daniyal1234-alt/hotelops/internal/kafka"
	"github.com/Daniyal1234-alt/hotelops/internal/repository"
	"github.com/Daniyal1234-alt/hotelops/internal/service/auth"
	"github.com/Daniyal1234-alt/hotelops/internal/service/booking"
	"github.com/Daniyal1234-alt/hotelops/internal/service/feedback"
	"github.com/Daniyal1234-alt/hotelops/internal/service/rooms"
	"github.com/Daniyal1234-alt/hotelops/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Rooms.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	roomRepo := repository.NewRoomRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)

	svcs := bootstrap.Services{
		Auth: auth.NewAuthService(userRepo, cfg.Auth.JWTSecret,
			time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute),
		Rooms: rooms.NewRoomService(roomRepo, redisCache),
		Bookings: booking.NewBookingService(
			bookingRepo,
			userRepo,
			redisCache,
			producer,
			cfg.Kafka.BookingEventsTopic,
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		),
		Users:    users.NewUserService(userRepo, staffRepo),
		Feedback: feedback.NewFeedbackService(feedbackRepo, complaintRepo, bookingRepo),
	}

	if err := bootstrap.Run(ctx, cfg, svcs); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
