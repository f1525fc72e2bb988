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

	createBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_booking"
	createCourtHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_court"
	deleteBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_booking"
	getCourtHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_court"
	getPaymentHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_payment"
	getUserBookingsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_user_bookings"
	getUserPaymentsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_user_payments"
	listCourtsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_courts"
	processPaymentHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/process_payment"
	rescheduleBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/reschedule_booking"
	setBookingStatusHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/set_booking_status"
	updateCourtHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/update_court"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/config"
	"github.com/m04kA/SMC-CourtService/internal/db"
	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	paymentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-CourtService/internal/pricing"
	bookingsService "github.com/m04kA/SMC-CourtService/internal/service/bookings"
	courtsService "github.com/m04kA/SMC-CourtService/internal/service/courts"
	paymentsService "github.com/m04kA/SMC-CourtService/internal/service/payments"
	createBookingUC "github.com/m04kA/SMC-CourtService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-CourtService/internal/usecase/get_availability"
	processPaymentUC "github.com/m04kA/SMC-CourtService/internal/usecase/process_payment"
	rescheduleBookingUC "github.com/m04kA/SMC-CourtService/internal/usecase/reschedule_booking"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/metrics"
	"github.com/m04kA/SMC-CourtService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
	"github.com/m04kA/SMC-CourtService/pkg/types"
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

	log.Info("Starting SMC-CourtService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer sqlDB.Close()

	// Настраиваем connection pool
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := db.RunMigrations(sqlDB, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Migrations applied from %s", cfg.Database.MigrationsPath)

	// Рабочие часы кортов
	operatingHours := domain.OperatingHours{
		OpenTime:            types.TimeString(cfg.Booking.OpenTime),
		CloseTime:           types.TimeString(cfg.Booking.CloseTime),
		SlotDurationMinutes: cfg.Booking.SlotDurationMinutes,
	}
	log.Info("Operating hours: %s - %s, slot=%dm",
		operatingHours.OpenTime, operatingHours.CloseTime, operatingHours.SlotDurationMinutes)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		courtRepository   *courtRepo.Repository
		paymentRepository *paymentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(sqlDB, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(sqlDB)
		courtRepository = courtRepo.NewRepository(sqlDB)
		paymentRepository = paymentRepo.NewRepository(sqlDB)
		txMgr = simpletxmanager.NewTransactionManager(sqlDB)
	}

	// Движок расчета стоимости
	pricingEngine := pricing.NewEngine()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	courtSvc := courtsService.NewService(courtRepository, log)
	paymentSvc := paymentsService.NewService(paymentRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		pricingEngine,
		txMgr,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		pricingEngine,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		courtRepository,
		operatingHours,
		log,
	)

	processPaymentUseCase := processPaymentUC.NewUseCase(
		paymentRepository,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	processPayment := processPaymentHandler.NewHandler(processPaymentUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	setBookingStatus := setBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	getCourt := getCourtHandler.NewHandler(courtSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	getPayment := getPaymentHandler.NewHandler(paymentSvc, log)
	getUserPayments := getUserPaymentsHandler.NewHandler(paymentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог кортов
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}", getCourt.Handle).Methods(http.MethodGet)

	// Сетка доступности корта на дату
	api.HandleFunc("/courts/{courtId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", setBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Платежи ---
	protected.HandleFunc("/payments/process", processPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{paymentId}", getPayment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/payments", getUserPayments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/payments/summary", getUserPayments.HandleSummary).Methods(http.MethodGet)

	// --- Управление кортами (для администраторов) ---
	protected.HandleFunc("/courts", createCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}", updateCourt.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
