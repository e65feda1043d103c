package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"ticketBooker/internal/config"
	"ticketBooker/internal/http-server/handlers/booking/bookGroup"
	"ticketBooker/internal/http-server/handlers/booking/bookTicket"
	"ticketBooker/internal/http-server/handlers/booking/cancelBooking"
	"ticketBooker/internal/http-server/handlers/booking/listBookings"
	"ticketBooker/internal/http-server/handlers/event/createEvent"
	"ticketBooker/internal/http-server/handlers/event/deleteEvent"
	"ticketBooker/internal/http-server/handlers/event/getAllEvents"
	"ticketBooker/internal/http-server/handlers/event/getEvent"
	"ticketBooker/internal/http-server/handlers/event/reviewEvent"
	"ticketBooker/internal/http-server/handlers/ticket/createTicket"
	"ticketBooker/internal/http-server/handlers/ticket/deleteTicket"
	"ticketBooker/internal/http-server/handlers/ticket/getEventTickets"
	"ticketBooker/internal/http-server/handlers/ticket/getTicket"
	"ticketBooker/internal/http-server/middleware/mwcache"
	"ticketBooker/internal/http-server/middleware/mwidentity"
	"ticketBooker/internal/http-server/middleware/mwlogger"
	"ticketBooker/internal/http-server/middleware/mwrole"
	"ticketBooker/internal/lib/logger/handlers/slogpretty"
	"ticketBooker/internal/lib/logger/sl"
	"ticketBooker/internal/monitoring"
	"ticketBooker/internal/policy"
	"ticketBooker/internal/queue"
	"ticketBooker/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting ticket booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Info("redis cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	var publisher *queue.Publisher
	if cfg.AMQP.Enabled {
		publisher = queue.NewPublisher(cfg.AMQP.URL, log)
		go queue.StartNotificationConsumer(cfg.AMQP.URL, log)
		log.Info("notification queue enabled")
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwidentity.New())

	router.Group(func(r chi.Router) {
		r.Use(mwcache.New(rdb, cfg.Cache.TTL))
		r.Get("/events", getAllEvents.New(log, storage))
		r.Get("/events/{id}", getEvent.New(log, storage))
	})

	router.Get("/events/{id}/tickets", getEventTickets.New(log, storage))
	router.Get("/tickets/{id}", getTicket.New(log, storage))

	router.Group(func(r chi.Router) {
		r.Use(mwrole.Require(policy.RoleManager, policy.RoleSuperAdmin))
		r.Post("/events", createEvent.New(log, storage))
		r.Delete("/events/{id}", deleteEvent.New(log, storage))
		r.Post("/tickets", createTicket.New(log, storage))
		r.Delete("/tickets/{id}", deleteTicket.New(log, storage))
	})

	router.Group(func(r chi.Router) {
		r.Use(mwrole.Require(policy.RoleSuperAdmin))
		r.Patch("/events/{id}/review", reviewEvent.New(log, storage))
	})

	router.Group(func(r chi.Router) {
		r.Use(mwidentity.RequireUser())
		r.Post("/bookings", bookTicket.New(log, storage))
		r.Post("/events/{id}/group-bookings", bookGroup.New(log, storage, publisher))
		r.Post("/bookings/{ticket_id}/cancel", cancelBooking.New(log, storage))
		r.Get("/bookings", listBookings.New(log, storage))
	})

	router.Handle("/metrics", monitoring.Handler())

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if rdb != nil {
		if err = rdb.Close(); err != nil {
			log.Error("failed to close redis connection", sl.Err(err))
		}
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
