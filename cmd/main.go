package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/whalys/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/whalys/booking-service/internal/api/handlers/create_booking"
	emailjsHandler "github.com/whalys/booking-service/internal/api/handlers/emailjs"
	generateCancelTokenHandler "github.com/whalys/booking-service/internal/api/handlers/generate_cancel_token"
	getAvailableSlotsHandler "github.com/whalys/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/whalys/booking-service/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/whalys/booking-service/internal/api/handlers/get_bookings"
	healthHandler "github.com/whalys/booking-service/internal/api/handlers/health"
	"github.com/whalys/booking-service/internal/api/middleware"
	"github.com/whalys/booking-service/internal/config"
	bookingRepo "github.com/whalys/booking-service/internal/infra/storage/booking"
	tokenRepo "github.com/whalys/booking-service/internal/infra/storage/canceltoken"
	bookingsService "github.com/whalys/booking-service/internal/service/bookings"
	cancellationService "github.com/whalys/booking-service/internal/service/cancellation"
	createBookingUC "github.com/whalys/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/whalys/booking-service/internal/usecase/get_available_slots"
	"github.com/whalys/booking-service/pkg/kvmetrics"
	"github.com/whalys/booking-service/pkg/localclock"
	"github.com/whalys/booking-service/pkg/logger"
	"github.com/whalys/booking-service/pkg/metrics"
)

func main() {
	// .env не обязателен: в проде значения приходят из окружения
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting whalys-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if cfg.Metrics.Enabled {
		rdb.AddHook(kvmetrics.NewHook(metricsCollector))
		log.Info("Redis metrics collection started")
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Часы в локальном времени кабинета: все правила бронирования
	// считаются в этом смещении
	clock := localclock.New(cfg.Booking.TimezoneOffsetHours)
	log.Info("Local clock initialized (UTC+%d)", cfg.Booking.TimezoneOffsetHours)

	// Каталог слотов из конфигурации
	catalog, err := cfg.Booking.SlotCatalog()
	if err != nil {
		log.Fatal("Invalid slot catalog in config: %v", err)
	}
	log.Info("Slot catalog loaded (%d slots)", len(catalog))

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(rdb)
	tokenRepository := tokenRepo.NewRepository(rdb)

	// Инициализируем сервисы
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	cancellationSvc := cancellationService.NewService(
		bookingRepository,
		tokenRepository,
		cfg.Booking.CancelBaseURL,
		clock,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalog,
		clock,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalog,
		clock,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingsSvc, log)
	generateCancelToken := generateCancelTokenHandler.NewHandler(cancellationSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancellationSvc, log)
	health := healthHandler.NewHandler(clock)
	emailjs := emailjsHandler.NewHandler(cfg.EmailJS, clock, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// CORS первым: фронтенд живет на другом origin
	r.Use(middleware.CORS)

	// Metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Служебные маршруты
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/emailjs-public-key", emailjs.HandlePublicKey).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/emailjs-check", emailjs.HandleCheck).Methods(http.MethodGet, http.MethodOptions)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Бронирования
	api.HandleFunc("/book-appointment", createBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Отмена по токену из письма
	api.HandleFunc("/generate-cancel-token", generateCancelToken.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/cancel-booking", cancelBooking.HandleConfirmPage).Methods(http.MethodGet)
	api.HandleFunc("/cancel-booking", cancelBooking.HandleCancel).Methods(http.MethodPost, http.MethodOptions)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
