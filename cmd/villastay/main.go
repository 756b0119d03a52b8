package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"villastay/internal/app/commands"
	appoutbox "villastay/internal/app/outbox"
	"villastay/internal/app/queries"
	"villastay/internal/app/uow"

	bookingapp "villastay/internal/app/handlers/booking"
	calendarapp "villastay/internal/app/handlers/calendar"
	dashboardapp "villastay/internal/app/handlers/dashboard"
	pricingapp "villastay/internal/app/handlers/pricing"
	villaapp "villastay/internal/app/handlers/villa"
	"villastay/internal/app/middleware"

	"villastay/internal/infra/broker/kafka"
	"villastay/internal/infra/config"
	mongodb "villastay/internal/infra/db/mongo"
	ginserver "villastay/internal/infra/http/gin"
	"villastay/internal/infra/obs"
	infraoutbox "villastay/internal/infra/outbox"
	"villastay/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	app, cleanup, err := buildApplication(cfg, logger)
	if err != nil {
		logger.Error("application bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: app.ready,
	}, app.handlers)

	if app.worker != nil {
		go func() {
			if err := app.worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("outbox worker stopped", "error", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	worker   *infraoutbox.Worker
	ready    func() error
}

func buildApplication(cfg config.Config, logger *slog.Logger) (application, func(), error) {
	cleanup := func() {}

	outboxStore := memory.NewOutbox()
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			return application{}, cleanup, err
		}
		publisher := &infraoutbox.Publisher{
			Producer:    producer,
			TopicPrefix: cfg.KafkaTopicPrefix,
		}
		outboxStore.Publisher = publisher.PublishRecords
		cleanup = func() {
			if err := producer.Close(); err != nil {
				logger.Warn("kafka producer close failed", "error", err)
			}
		}
	} else {
		logger.Warn("kafka brokers not configured, events stay local")
	}

	uowFactory, ready, err := buildStorage(cfg)
	if err != nil {
		return application{}, cleanup, err
	}

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, bookingapp.RequestBookingCommand{}.Key(), &bookingapp.RequestBookingHandler{
		UoWFactory: uowFactory,
		Outbox:     outboxStore,
		Encoder:    appoutbox.JSONEventEncoder{},
	})
	commands.RegisterHandler(commandBus, bookingapp.ConfirmBookingCommand{}.Key(), &bookingapp.ConfirmBookingHandler{
		UoWFactory: uowFactory,
		Outbox:     outboxStore,
	})
	commands.RegisterHandler(commandBus, bookingapp.CancelBookingCommand{}.Key(), &bookingapp.CancelBookingHandler{
		UoWFactory: uowFactory,
		Outbox:     outboxStore,
	})
	commands.RegisterHandler(commandBus, pricingapp.AddSeasonalPriceCommand{}.Key(), &pricingapp.AddSeasonalPriceHandler{
		UoWFactory: uowFactory,
	})
	commands.RegisterHandler(commandBus, pricingapp.RemoveSeasonalPriceCommand{}.Key(), &pricingapp.RemoveSeasonalPriceHandler{
		UoWFactory: uowFactory,
	})
	commands.RegisterHandler(commandBus, villaapp.CreateVillaCommand{}.Key(), &villaapp.CreateVillaHandler{
		UoWFactory: uowFactory,
		Outbox:     outboxStore,
	})
	commands.RegisterHandler(commandBus, villaapp.ToggleVillaActiveCommand{}.Key(), &villaapp.ToggleVillaActiveHandler{
		UoWFactory: uowFactory,
		Outbox:     outboxStore,
	})
	commands.RegisterHandler(commandBus, villaapp.ToggleVillaFeaturedCommand{}.Key(), &villaapp.ToggleVillaFeaturedHandler{
		UoWFactory: uowFactory,
		Outbox:     outboxStore,
	})

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, calendarapp.GetCalendarQuery{}.Key(), &calendarapp.GetCalendarHandler{UoWFactory: uowFactory})
	queries.RegisterHandler(queryBus, bookingapp.ListBookingsQuery{}.Key(), &bookingapp.ListBookingsHandler{UoWFactory: uowFactory})
	queries.RegisterHandler(queryBus, villaapp.ListVillasQuery{}.Key(), &villaapp.ListVillasHandler{UoWFactory: uowFactory})
	queries.RegisterHandler(queryBus, villaapp.GetVillaQuery{}.Key(), &villaapp.GetVillaHandler{UoWFactory: uowFactory})
	queries.RegisterHandler(queryBus, dashboardapp.WeeklyOccupancyQuery{}.Key(), &dashboardapp.WeeklyOccupancyHandler{UoWFactory: uowFactory})
	queries.RegisterHandler(queryBus, dashboardapp.GetStatsQuery{}.Key(), &dashboardapp.GetStatsHandler{UoWFactory: uowFactory})

	commandBusWithMiddleware := middleware.ChainCommands(
		commandBus,
		middleware.Logging(logger),
		middleware.Transaction(uowFactory, nil),
		middleware.OutboxFlush(outboxStore),
	)
	queryBusWithMiddleware := middleware.ChainQueries(
		queryBus,
		middleware.QueryLogging(logger),
	)

	worker := &infraoutbox.Worker{
		Box:      outboxStore,
		Interval: cfg.OutboxPollInterval,
		Logger:   logger,
	}

	return application{
		handlers: ginserver.Handlers{
			Booking: ginserver.BookingHandler{
				Commands: commandBusWithMiddleware,
				Queries:  queryBusWithMiddleware,
			},
			Calendar: ginserver.CalendarHandler{
				Queries:       queryBusWithMiddleware,
				DefaultMonths: cfg.CalendarMonths,
			},
			Villa: ginserver.VillaHandler{
				Commands: commandBusWithMiddleware,
				Queries:  queryBusWithMiddleware,
			},
			Pricing: ginserver.PricingHandler{
				Commands: commandBusWithMiddleware,
			},
			Dashboard: ginserver.DashboardHandler{
				Queries: queryBusWithMiddleware,
			},
		},
		worker: worker,
		ready:  ready,
	}, cleanup, nil
}

func buildStorage(cfg config.Config) (uow.UoWFactory, func() error, error) {
	if cfg.StorageMode == "mongo" {
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		factory := mongodb.Factory{
			DB:              client.DB,
			VillaRepo:       mongodb.NewVillaRepository(client.DB),
			ReservationRepo: mongodb.NewReservationRepository(client.DB),
			SeasonalRepo:    mongodb.NewSeasonalRepository(client.DB),
		}
		ready := func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx)
		}
		return factory, ready, nil
	}

	factory := memory.Factory{
		VillaRepo:       memory.NewVillaRepository(),
		ReservationRepo: memory.NewReservationRepository(),
		SeasonalRepo:    memory.NewSeasonalRepository(),
	}
	return factory, func() error { return nil }, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
