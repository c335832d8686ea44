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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelPaymentHandler "github.com/m04kA/SMC-SportBookingService/internal/api/handlers/cancel_payment"
	cancelSelectionHandler "github.com/m04kA/SMC-SportBookingService/internal/api/handlers/cancel_selection"
	createSelectionHandler "github.com/m04kA/SMC-SportBookingService/internal/api/handlers/create_selection"
	getPaymentHandler "github.com/m04kA/SMC-SportBookingService/internal/api/handlers/get_payment"
	getSelectionHandler "github.com/m04kA/SMC-SportBookingService/internal/api/handlers/get_selection"
	getSlotAvailabilityHandler "github.com/m04kA/SMC-SportBookingService/internal/api/handlers/get_slot_availability"
	getUserPaymentsHandler "github.com/m04kA/SMC-SportBookingService/internal/api/handlers/get_user_payments"
	setSelectionDateHandler "github.com/m04kA/SMC-SportBookingService/internal/api/handlers/set_selection_date"
	startPaymentHandler "github.com/m04kA/SMC-SportBookingService/internal/api/handlers/start_payment"
	submitBookingHandler "github.com/m04kA/SMC-SportBookingService/internal/api/handlers/submit_booking"
	toggleSlotHandler "github.com/m04kA/SMC-SportBookingService/internal/api/handlers/toggle_slot"
	"github.com/m04kA/SMC-SportBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SportBookingService/internal/config"
	"github.com/m04kA/SMC-SportBookingService/internal/infra/selectionstore"
	sessionRepo "github.com/m04kA/SMC-SportBookingService/internal/infra/storage/paymentsession"
	bookingServiceClient "github.com/m04kA/SMC-SportBookingService/internal/integrations/bookingservice"
	facilityServiceClient "github.com/m04kA/SMC-SportBookingService/internal/integrations/facilityservice"
	paymentServiceClient "github.com/m04kA/SMC-SportBookingService/internal/integrations/paymentservice"
	paymentsService "github.com/m04kA/SMC-SportBookingService/internal/service/payments"
	selectionsService "github.com/m04kA/SMC-SportBookingService/internal/service/selections"
	getSlotAvailabilityUC "github.com/m04kA/SMC-SportBookingService/internal/usecase/get_slot_availability"
	setSelectionDateUC "github.com/m04kA/SMC-SportBookingService/internal/usecase/set_selection_date"
	submitBookingUC "github.com/m04kA/SMC-SportBookingService/internal/usecase/submit_booking"
	toggleSlotUC "github.com/m04kA/SMC-SportBookingService/internal/usecase/toggle_slot"
	"github.com/m04kA/SMC-SportBookingService/pkg/authtoken"
	"github.com/m04kA/SMC-SportBookingService/pkg/logger"
	"github.com/m04kA/SMC-SportBookingService/pkg/metrics"
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

	log.Info("Starting SMC-SportBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Подключаемся к Redis (хранилище выборок)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Сервисный токен для исходящих вызовов
	tokens := authtoken.NewStaticProvider(cfg.Auth.ServiceToken)

	// Инициализируем интеграционных клиентов
	facilityClient := facilityServiceClient.NewClient(
		cfg.Facility.URL,
		time.Duration(cfg.Facility.Timeout)*time.Second,
		tokens,
		log,
	)
	bookingClient := bookingServiceClient.NewClient(
		cfg.Booking.URL,
		time.Duration(cfg.Booking.Timeout)*time.Second,
		tokens,
		log,
	)
	paymentClient := paymentServiceClient.NewClient(
		cfg.Payment.URL,
		time.Duration(cfg.Payment.Timeout)*time.Second,
		tokens,
		log,
	)
	log.Info("Integration clients initialized (FacilityService=%s, BookingService=%s, PaymentService=%s)",
		cfg.Facility.URL, cfg.Booking.URL, cfg.Payment.URL)

	// Инициализируем хранилища
	selectionStore := selectionstore.NewStore(rdb, time.Duration(cfg.Selections.TTLMinutes)*time.Minute)
	sessionRepository := sessionRepo.NewRepository(db)

	// Инициализируем сервисы
	selectionsSvc := selectionsService.NewService(
		selectionStore,
		facilityClient,
		bookingClient,
		log,
	)

	// Metrics может быть nil, оркестратор это учитывает
	var paymentMetrics paymentsService.Metrics
	if cfg.Metrics.Enabled {
		paymentMetrics = metricsCollector
	}

	paymentsSvc := paymentsService.NewService(
		sessionRepository,
		paymentClient,
		bookingClient,
		paymentsService.BankDetails{
			Name:          cfg.Payments.BankName,
			AccountNumber: cfg.Payments.BankAccountNumber,
			AccountHolder: cfg.Payments.BankAccountHolder,
		},
		paymentsService.PollingConfig{
			Interval:     time.Duration(cfg.Payments.PollIntervalSeconds) * time.Second,
			InitialDelay: time.Duration(cfg.Payments.InitialDelaySeconds) * time.Second,
			MaxAttempts:  cfg.Payments.MaxPollAttempts,
		},
		log,
		paymentMetrics,
	)

	// Инициализируем use cases
	getSlotAvailabilityUseCase := getSlotAvailabilityUC.NewUseCase(facilityClient, bookingClient, log)
	toggleSlotUseCase := toggleSlotUC.NewUseCase(selectionStore, bookingClient, log)
	setSelectionDateUseCase := setSelectionDateUC.NewUseCase(selectionStore, bookingClient, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(selectionStore, bookingClient, sessionRepository, log)

	// Инициализируем handlers
	getSlotAvailability := getSlotAvailabilityHandler.NewHandler(getSlotAvailabilityUseCase, log)
	createSelection := createSelectionHandler.NewHandler(selectionsSvc, log)
	getSelection := getSelectionHandler.NewHandler(selectionsSvc, log)
	cancelSelection := cancelSelectionHandler.NewHandler(selectionsSvc, log)
	toggleSlot := toggleSlotHandler.NewHandler(toggleSlotUseCase, log)
	setSelectionDate := setSelectionDateHandler.NewHandler(setSelectionDateUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	startPayment := startPaymentHandler.NewHandler(paymentsSvc, log)
	getPayment := getPaymentHandler.NewHandler(paymentsSvc, log)
	cancelPayment := cancelPaymentHandler.NewHandler(paymentsSvc, log)
	getUserPayments := getUserPaymentsHandler.NewHandler(paymentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка слотов сооружения на дату
	api.HandleFunc("/facilities/{facilityId}/availability",
		getSlotAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Выборки слотов ---
	protected.HandleFunc("/selections", createSelection.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selections/{selectionId}", getSelection.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/selections/{selectionId}", cancelSelection.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/selections/{selectionId}/slots/toggle", toggleSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selections/{selectionId}/date", setSelectionDate.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/selections/{selectionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Платежи ---
	protected.HandleFunc("/payments", startPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{transactionId}", getPayment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{transactionId}/cancel", cancelPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/payments", getUserPayments.Handle).Methods(http.MethodGet)

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

	// Останавливаем циклы опроса платежей
	paymentsSvc.Shutdown()

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
