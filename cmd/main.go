package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkoutHandler "github.com/m04kA/ChaletBookingService/internal/api/handlers/checkout"
	confirmSelectionHandler "github.com/m04kA/ChaletBookingService/internal/api/handlers/confirm_selection"
	getAvailabilityHandler "github.com/m04kA/ChaletBookingService/internal/api/handlers/get_availability"
	getChaletReservationsHandler "github.com/m04kA/ChaletBookingService/internal/api/handlers/get_chalet_reservations"
	getQuoteHandler "github.com/m04kA/ChaletBookingService/internal/api/handlers/get_quote"
	getReservationHandler "github.com/m04kA/ChaletBookingService/internal/api/handlers/get_reservation"
	getSelectionHandler "github.com/m04kA/ChaletBookingService/internal/api/handlers/get_selection"
	pickDateHandler "github.com/m04kA/ChaletBookingService/internal/api/handlers/pick_date"
	startSelectionHandler "github.com/m04kA/ChaletBookingService/internal/api/handlers/start_selection"
	"github.com/m04kA/ChaletBookingService/internal/api/middleware"
	"github.com/m04kA/ChaletBookingService/internal/config"
	"github.com/m04kA/ChaletBookingService/internal/events"
	"github.com/m04kA/ChaletBookingService/internal/infra/broker/kafka"
	reservationRepo "github.com/m04kA/ChaletBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/ChaletBookingService/internal/infra/storage/session"
	"github.com/m04kA/ChaletBookingService/internal/integrations/platformapi"
	chaletsService "github.com/m04kA/ChaletBookingService/internal/service/chalets"
	reservationsService "github.com/m04kA/ChaletBookingService/internal/service/reservations"
	selectionsService "github.com/m04kA/ChaletBookingService/internal/service/selections"
	checkoutUC "github.com/m04kA/ChaletBookingService/internal/usecase/checkout"
	confirmSelectionUC "github.com/m04kA/ChaletBookingService/internal/usecase/confirm_selection"
	getAvailabilityUC "github.com/m04kA/ChaletBookingService/internal/usecase/get_availability"
	getQuoteUC "github.com/m04kA/ChaletBookingService/internal/usecase/get_quote"
	getSelectionUC "github.com/m04kA/ChaletBookingService/internal/usecase/get_selection"
	pickDateUC "github.com/m04kA/ChaletBookingService/internal/usecase/pick_date"
	startSelectionUC "github.com/m04kA/ChaletBookingService/internal/usecase/start_selection"
	"github.com/m04kA/ChaletBookingService/pkg/dbmetrics"
	"github.com/m04kA/ChaletBookingService/pkg/logger"
	"github.com/m04kA/ChaletBookingService/pkg/metrics"
	"github.com/m04kA/ChaletBookingService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting ChaletBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка просто проксирует запросы в *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)

	// Хранилище сессий выбора дат и черновиков
	var sessionStore session.Store
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		sessionStore, err = session.NewRedisStore(pingCtx, cfg.Session.RedisAddr, cfg.Session.RedisPassword,
			cfg.Session.RedisDB, cfg.Session.KeyPrefix)
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		log.Info("Session store: redis (addr=%s, db=%d)", cfg.Session.RedisAddr, cfg.Session.RedisDB)
	default:
		sessionStore = session.NewMemoryStore(time.Duration(cfg.Session.CleanupInterval) * time.Second)
		log.Info("Session store: in-memory (cleanup every %ds)", cfg.Session.CleanupInterval)
	}
	defer sessionStore.Close()

	// События бронирований
	var publisher checkoutUC.EventPublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.ClientID, nil)
		if err != nil {
			log.Fatal("Failed to create kafka producer: %v", err)
		}
		defer producer.Close()
		publisher = events.NewPublisher(producer, cfg.Kafka.Topic)
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Инициализируем интеграционных клиентов
	platformClient := platformapi.NewClient(
		cfg.Platform.URL,
		time.Duration(cfg.Platform.Timeout)*time.Second,
		log,
	)
	log.Info("Platform client initialized (url=%s, timeout=%ds)", cfg.Platform.URL, cfg.Platform.Timeout)

	// Инициализируем сервисы
	chaletSvc := chaletsService.NewService(platformClient, reservationRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	selectionSvc := selectionsService.NewService(sessionStore, cfg.Session.TTLDuration(), log)

	// Инициализируем use cases
	checkRange := cfg.Booking.ValidateRangeOverlap

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		chaletSvc,
		cfg.Booking.AvailabilityDays,
		cfg.Booking.MaxAvailabilityDays,
		log,
	)
	getQuoteUseCase := getQuoteUC.NewUseCase(chaletSvc, checkRange, log)
	startSelectionUseCase := startSelectionUC.NewUseCase(chaletSvc, selectionSvc, log)
	getSelectionUseCase := getSelectionUC.NewUseCase(selectionSvc, log)
	pickDateUseCase := pickDateUC.NewUseCase(selectionSvc, checkRange, metricsCollector, log)
	confirmSelectionUseCase := confirmSelectionUC.NewUseCase(selectionSvc, metricsCollector, log)
	checkoutUseCase := checkoutUC.NewUseCase(
		selectionSvc,
		reservationRepository,
		platformClient,
		publisher,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	startSelection := startSelectionHandler.NewHandler(startSelectionUseCase, log)
	getSelection := getSelectionHandler.NewHandler(getSelectionUseCase, log)
	pickDate := pickDateHandler.NewHandler(pickDateUseCase, log)
	confirmSelection := confirmSelectionHandler.NewHandler(confirmSelectionUseCase, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getChaletReservations := getChaletReservationsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Календарь и цены ---
	api.HandleFunc("/chalets/{chaletId:[0-9]+}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/chalets/{chaletId:[0-9]+}/quote", getQuote.Handle).Methods(http.MethodGet)

	// --- Выбор дат ---
	api.HandleFunc("/chalets/{chaletId:[0-9]+}/selections", startSelection.Handle).Methods(http.MethodPost)
	api.HandleFunc("/selections/{selectionId}", getSelection.Handle).Methods(http.MethodGet)
	api.HandleFunc("/selections/{selectionId}/{target:start|end}", pickDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/selections/{selectionId}/confirm", confirmSelection.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/checkout", checkout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/chalets/{chaletId:[0-9]+}/reservations", getChaletReservations.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
