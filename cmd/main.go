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

	findMatchesHandler "github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers/find_waitlist_matches"
	getQueueHandler "github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers/get_queue"
	getSettingsHandler "github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers/get_shop_settings"
	getWaitlistHandler "github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers/get_waitlist"
	joinQueueHandler "github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers/join_queue"
	joinWaitlistHandler "github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers/join_waitlist"
	notifyWaitlistHandler "github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers/notify_waitlist"
	releaseBookingHandler "github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers/release_booking"
	updateQueueEntryHandler "github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers/update_queue_entry"
	updateSettingsHandler "github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers/update_shop_settings"
	updateWaitlistEntryHandler "github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers/update_waitlist_entry"
	"github.com/asharptechsolutions/stylist-scheduler/internal/api/middleware"
	"github.com/asharptechsolutions/stylist-scheduler/internal/config"
	bookingRepo "github.com/asharptechsolutions/stylist-scheduler/internal/infra/storage/booking"
	queueRepo "github.com/asharptechsolutions/stylist-scheduler/internal/infra/storage/queue"
	settingsRepo "github.com/asharptechsolutions/stylist-scheduler/internal/infra/storage/settings"
	waitlistRepo "github.com/asharptechsolutions/stylist-scheduler/internal/infra/storage/waitlist"
	staffServiceClient "github.com/asharptechsolutions/stylist-scheduler/internal/integrations/staffservice"
	queueService "github.com/asharptechsolutions/stylist-scheduler/internal/service/queue"
	settingsService "github.com/asharptechsolutions/stylist-scheduler/internal/service/settings"
	waitlistService "github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist"
	releaseSlotUC "github.com/asharptechsolutions/stylist-scheduler/internal/usecase/release_slot"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/dbmetrics"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/logger"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/metrics"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/txmanager"
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

	log.Info("Starting stylist-scheduler...")

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка только прокидывает вызовы в *sql.DB
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	queueRepository := queueRepo.NewRepository(wrappedDB)
	waitlistRepository := waitlistRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)

	// Staff Service опционален, без него число мест берется из настроек
	var staffClient queueService.StaffServiceClient
	if cfg.StaffService.URL != "" {
		staffClient = staffServiceClient.NewClient(
			cfg.StaffService.URL,
			time.Duration(cfg.StaffService.Timeout)*time.Second,
			log,
		)
		log.Info("Staff service client initialized (url=%s timeout=%ds)",
			cfg.StaffService.URL, cfg.StaffService.Timeout)
	} else {
		log.Warn("Staff service URL is empty, server count falls back to shop settings")
	}

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(
		settingsRepository,
		settingsService.Defaults{
			ServerCount:            cfg.Queue.DefaultServerCount,
			DefaultDurationMinutes: cfg.Queue.DefaultDurationMinutes,
		},
		log,
	)
	queueSvc := queueService.NewService(
		queueRepository,
		settingsRepository,
		staffClient,
		txMgr,
		metricsCollector,
		queueService.Config{
			DefaultDurationMinutes: cfg.Queue.DefaultDurationMinutes,
			DefaultServerCount:     cfg.Queue.DefaultServerCount,
		},
		log,
	)
	waitlistSvc := waitlistService.NewService(waitlistRepository, txMgr, metricsCollector, log)

	// Инициализируем use cases
	releaseSlotUseCase := releaseSlotUC.NewUseCase(
		bookingRepository,
		waitlistRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	joinQueue := joinQueueHandler.NewHandler(queueSvc, log)
	getQueue := getQueueHandler.NewHandler(queueSvc, log)
	startEntry := updateQueueEntryHandler.NewHandler(queueSvc, updateQueueEntryHandler.ActionStart, log)
	completeEntry := updateQueueEntryHandler.NewHandler(queueSvc, updateQueueEntryHandler.ActionComplete, log)
	noShowEntry := updateQueueEntryHandler.NewHandler(queueSvc, updateQueueEntryHandler.ActionNoShow, log)
	moveUpEntry := updateQueueEntryHandler.NewHandler(queueSvc, updateQueueEntryHandler.ActionMoveUp, log)
	moveDownEntry := updateQueueEntryHandler.NewHandler(queueSvc, updateQueueEntryHandler.ActionMoveDown, log)

	joinWaitlist := joinWaitlistHandler.NewHandler(waitlistSvc, log)
	getWaitlist := getWaitlistHandler.NewHandler(waitlistSvc, log)
	notifyEntry := updateWaitlistEntryHandler.NewHandler(waitlistSvc, updateWaitlistEntryHandler.ActionNotify, log)
	expireEntry := updateWaitlistEntryHandler.NewHandler(waitlistSvc, updateWaitlistEntryHandler.ActionExpire, log)
	bookEntry := updateWaitlistEntryHandler.NewHandler(waitlistSvc, updateWaitlistEntryHandler.ActionBook, log)
	notifyWaitlist := notifyWaitlistHandler.NewHandler(waitlistSvc, log)
	findMatches := findMatchesHandler.NewHandler(waitlistSvc, log)

	cancelBooking := releaseBookingHandler.NewHandler(releaseSlotUseCase, releaseSlotUC.ActionCancel, log)
	rejectBooking := releaseBookingHandler.NewHandler(releaseSlotUseCase, releaseSlotUC.ActionReject, log)

	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Живая очередь ---
	api.HandleFunc("/shops/{shopId}/queue", joinQueue.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId}/queue", getQueue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}/queue/{entryId}/start", startEntry.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId}/queue/{entryId}/complete", completeEntry.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId}/queue/{entryId}/no-show", noShowEntry.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId}/queue/{entryId}/move-up", moveUpEntry.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId}/queue/{entryId}/move-down", moveDownEntry.Handle).Methods(http.MethodPost)

	// --- Лист ожидания ---
	api.HandleFunc("/shops/{shopId}/waitlist", joinWaitlist.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId}/waitlist", getWaitlist.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}/waitlist/notify", notifyWaitlist.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId}/waitlist/matches", findMatches.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId}/waitlist/{entryId}/notify", notifyEntry.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId}/waitlist/{entryId}/expire", expireEntry.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId}/waitlist/{entryId}/book", bookEntry.Handle).Methods(http.MethodPost)

	// --- Освобождение слотов ---
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)

	// --- Настройки магазина ---
	api.HandleFunc("/shops/{shopId}/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}/settings", updateSettings.Handle).Methods(http.MethodPut)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

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
