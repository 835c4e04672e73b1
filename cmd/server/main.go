package main

import (
	"strconv"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shareit/config"
	"shareit/internal/handler"
	"shareit/internal/logging"
	"shareit/internal/metrics"
	"shareit/internal/middleware"
	"shareit/internal/repository"
	"shareit/internal/service"
	"shareit/pkg/database"
	"shareit/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, "shareit-server")

	var (
		userRepo    repository.UserRepository
		itemRepo    repository.ItemRepository
		bookingRepo repository.BookingRepository
		commentRepo repository.CommentRepository
		requestRepo repository.ItemRequestRepository
	)
	if cfg.Storage == "memory" {
		store := repository.NewMemoryStore()
		userRepo = store.Users()
		itemRepo = store.Items()
		bookingRepo = store.Bookings()
		commentRepo = store.Comments()
		requestRepo = store.Requests()
		log.Warn().Msg("using in-memory storage, data will not survive a restart")
	} else {
		db := database.NewPostgresDB(cfg.DSN())
		userRepo = repository.NewUserRepository(db)
		itemRepo = repository.NewItemRepository(db)
		bookingRepo = repository.NewBookingRepository(db)
		commentRepo = repository.NewCommentRepository(db)
		requestRepo = repository.NewItemRequestRepository(db)
	}

	// Event publishing is optional: an empty AMQP_URL runs the service
	// without a broker.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer publisher.Close()
	}

	userSvc := service.NewUserService(userRepo, publisher, log)
	itemSvc := service.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo, requestRepo, log)
	bookingSvc := service.NewBookingService(bookingRepo, itemRepo, userRepo, commentRepo, publisher, log)
	requestSvc := service.NewItemRequestService(requestRepo, itemRepo, userRepo, log)

	metrics.Register()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			metrics.IncHTTP(v.Method, c.Path(), strconv.Itoa(v.Status))
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "shareit-server"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewUserHandler(userSvc).RegisterRoutes(e)
	handler.NewItemHandler(itemSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewItemRequestHandler(requestSvc).RegisterRoutes(e)

	log.Info().Int("port", cfg.ServerPort).Str("storage", cfg.Storage).Msg("server starting")
	if err := e.Start(":" + strconv.Itoa(cfg.ServerPort)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
