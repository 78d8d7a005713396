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

	cancelAppointmentHandler "github.com/m04kA/SPA-AvailabilityService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SPA-AvailabilityService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SPA-AvailabilityService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SPA-AvailabilityService/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/m04kA/SPA-AvailabilityService/internal/api/handlers/get_client_appointments"
	getSalonAppointmentsHandler "github.com/m04kA/SPA-AvailabilityService/internal/api/handlers/get_salon_appointments"
	updateAppointmentStatusHandler "github.com/m04kA/SPA-AvailabilityService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SPA-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SPA-AvailabilityService/internal/config"
	appointmentRepo "github.com/m04kA/SPA-AvailabilityService/internal/infra/storage/appointment"
	availabilityRuleRepo "github.com/m04kA/SPA-AvailabilityService/internal/infra/storage/availabilityrule"
	staffRepo "github.com/m04kA/SPA-AvailabilityService/internal/infra/storage/staff"
	catalogServiceClient "github.com/m04kA/SPA-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/SPA-AvailabilityService/internal/integrations/smsgateway"
	appointmentsService "github.com/m04kA/SPA-AvailabilityService/internal/service/appointments"
	createAppointmentUC "github.com/m04kA/SPA-AvailabilityService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SPA-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SPA-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SPA-AvailabilityService/pkg/logger"
	"github.com/m04kA/SPA-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SPA-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/SPA-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting SPA-AvailabilityService...")
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

	// Инициализируем клиент каталога салонов и услуг
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем SMS-шлюз (если включен)
	var smsSender createAppointmentUC.SMSSender
	if cfg.SMS.Enabled {
		primary := smsgateway.NewHTTPProvider(
			cfg.SMS.Primary.Name,
			cfg.SMS.Primary.URL,
			cfg.SMS.Primary.APIKey,
			cfg.SMS.Primary.Sender,
			time.Duration(cfg.SMS.Primary.Timeout)*time.Second,
		)

		var secondary smsgateway.Provider
		if cfg.SMS.Secondary.URL != "" {
			secondary = smsgateway.NewHTTPProvider(
				cfg.SMS.Secondary.Name,
				cfg.SMS.Secondary.URL,
				cfg.SMS.Secondary.APIKey,
				cfg.SMS.Secondary.Sender,
				time.Duration(cfg.SMS.Secondary.Timeout)*time.Second,
			)
		}

		var smsMetrics smsgateway.Metrics
		if metricsCollector != nil {
			smsMetrics = metricsCollector
		}

		smsSender = smsgateway.NewFailoverSender(primary, secondary, smsMetrics, log)
		log.Info("SMS gateway initialized (primary=%s, secondary=%s)",
			cfg.SMS.Primary.Name, cfg.SMS.Secondary.Name)
	} else {
		log.Info("SMS gateway disabled, confirmations will not be sent")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		staffRepository       *staffRepo.Repository
		ruleRepository        *availabilityRuleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		ruleRepository = availabilityRuleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		ruleRepository = availabilityRuleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		catalogClient,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		ruleRepository,
		catalogClient,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		ruleRepository,
		catalogClient,
		txMgr,
		smsSender,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getSalonAppointments := getSalonAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Подбор доступных слотов с учетом занятости мастеров
	api.HandleFunc("/salons/{salonId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на услуги ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Изменение статуса записи (для менеджеров салона)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для менеджеров) ---
	// Список записей салона
	protected.HandleFunc("/salons/{salonId}/appointments", getSalonAppointments.Handle).Methods(http.MethodGet)

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
