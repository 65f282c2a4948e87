package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/rs/cors"

	cancelBookingHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/cancel_booking"
	checkStorageHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/check_storage"
	createBlockHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/create_block"
	createBookingHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/create_booking"
	deleteBlockHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/delete_block"
	deleteBookingHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/get_available_slots"
	getBlocksHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/get_blocks"
	getBookingHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/get_booking"
	getSettingsHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/get_settings"
	getSlotCalendarHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/get_slot_calendar"
	healthHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/list_bookings"
	sendReminderHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/send_reminder"
	updateBookingHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/update_booking"
	updateSettingsHandler "github.com/m04kA/Oasis-BookingService/internal/api/handlers/update_settings"
	"github.com/m04kA/Oasis-BookingService/internal/api/middleware"
	"github.com/m04kA/Oasis-BookingService/internal/auth"
	"github.com/m04kA/Oasis-BookingService/internal/config"
	blockedRepo "github.com/m04kA/Oasis-BookingService/internal/infra/storage/blocked"
	bookingRepo "github.com/m04kA/Oasis-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Oasis-BookingService/internal/infra/storage/kv"
	settingsRepo "github.com/m04kA/Oasis-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Oasis-BookingService/internal/integrations/notifier"
	availabilityService "github.com/m04kA/Oasis-BookingService/internal/service/availability"
	blocksService "github.com/m04kA/Oasis-BookingService/internal/service/blocks"
	bookingsService "github.com/m04kA/Oasis-BookingService/internal/service/bookings"
	ledgerService "github.com/m04kA/Oasis-BookingService/internal/service/ledger"
	createBookingUC "github.com/m04kA/Oasis-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/Oasis-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Oasis-BookingService/pkg/logger"
	"github.com/m04kA/Oasis-BookingService/pkg/metrics"
	"github.com/m04kA/Oasis-BookingService/pkg/slotclock"
	"github.com/m04kA/Oasis-BookingService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	hashSecret := flag.String("hash-secret", "", "print bcrypt hash of the given admin secret and exit")
	flag.Parse()

	// Утилита для получения admin.secret_hash
	if *hashSecret != "" {
		hash, err := auth.HashSecret(*hashSecret)
		if err != nil {
			fmt.Printf("Failed to hash secret: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting Oasis-BookingService...")
	log.Info("Configuration loaded from %s", *configPath)

	location, err := slotclock.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		log.Fatal("Failed to load business timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу
	store, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to open %s storage: %v", cfg.Storage.Backend, err)
	}
	defer store.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.Storage.OperationTimeout())
	if err := store.Ping(pingCtx); err != nil {
		// Сервис стартует и без хранилища: чтение деградирует, запись отвечает 503
		log.Warn("Storage %s is not reachable at startup: %v", store.Kind(), err)
	} else {
		log.Info("Successfully connected to %s storage", store.Kind())
	}
	pingCancel()

	if metricsCollector != nil {
		store = kv.Instrumented(store, metricsCollector)
	}
	store = kv.WithTimeout(store, cfg.Storage.OperationTimeout())

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(store, cfg.Storage.KeyPrefix)
	blockedRepository := blockedRepo.NewRepository(store, cfg.Storage.KeyPrefix)
	settingsRepository := settingsRepo.NewRepository(store, cfg.Storage.KeyPrefix)

	// Инициализируем уведомления
	gateway, closeGateway := newGateway(cfg, location, log)
	defer closeGateway()

	var notificationMetrics notifier.OutcomeRecorder
	if metricsCollector != nil {
		notificationMetrics = metricsCollector
	}
	dispatcher := notifier.NewDispatcher(
		notifier.NewRetrying(gateway, cfg.Notifications.MaxAttempts, cfg.Notifications.Backoff(), log),
		cfg.Notifications.DispatchTimeout(),
		log,
		notificationMetrics,
	)
	log.Info("Notifications initialized (provider=%s, attempts=%d)",
		cfg.Notifications.Provider, cfg.Notifications.MaxAttempts)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(settingsRepository, location, log)
	ledgerSvc := ledgerService.NewService(bookingRepository, blockedRepository, availabilitySvc, location)
	blocksSvc := blocksService.NewService(blockedRepository, location, log)
	bookingSvc := bookingsService.NewService(bookingRepository, dispatcher, store, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, ledgerSvc, dispatcher, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(ledgerSvc, log)

	if metricsCollector != nil {
		bookingSvc.WithMetrics(metricsCollector)
		createBookingUseCase.WithMetrics(metricsCollector)
	}

	// Проверка администратора
	verifier, err := auth.NewVerifier(cfg.Admin.Secret, cfg.Admin.SecretHash)
	if err != nil {
		log.Fatal("Failed to initialize admin authentication: %v", err)
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSlotCalendar := getSlotCalendarHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailableSlotsUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	sendReminder := sendReminderHandler.NewHandler(bookingSvc, log)
	checkStorage := checkStorageHandler.NewHandler(bookingSvc, log)
	getBlocks := getBlocksHandler.NewHandler(blocksSvc, log)
	createBlock := createBlockHandler.NewHandler(blocksSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blocksSvc, log)
	getSettings := getSettingsHandler.NewHandler(availabilitySvc, log)
	updateSettings := updateSettingsHandler.NewHandler(availabilitySvc, log)
	health := healthHandler.NewHandler(store, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Ограничение частоты для публичных мутирующих запросов
	limited := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		if cfg.RateLimit.TrustProxy {
			limiter.TrustProxy()
		}
		limited = limiter.LimitFunc
		log.Info("Rate limiting enabled (%.0f req/min, burst %d, trust_proxy=%t)",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}

	// Занятость для публичного календаря (без контактных данных)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Свободные слоты
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/calendar", getSlotCalendar.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.Handle("/bookings", limited(createBooking.Handle)).Methods(http.MethodPost)

	// Отмена по токену из письма
	api.Handle("/cancel", limited(cancelBooking.Handle)).Methods(http.MethodGet, http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <secret>)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(verifier, log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/reminder", sendReminder.Handle).Methods(http.MethodPost)

	// --- Блокировки ---
	admin.HandleFunc("/blocks", getBlocks.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocks", createBlock.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocks", deleteBlock.Handle).Methods(http.MethodDelete)

	// --- Настройки доступности ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// --- Хранилище ---
	admin.HandleFunc("/storage", checkStorage.Handle).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (storage=%s, timezone=%s)", addr, store.Kind(), location)
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

	// Дожидаемся отправки уже поставленных уведомлений
	dispatcher.Wait()
	log.Info("Pending notifications flushed")

	log.Info("Server stopped gracefully")
}

// openStore создает бэкенд хранилища по конфигурации
func openStore(cfg *config.Config, log *logger.Logger) (kv.Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		log.Info("Using redis storage (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		return kv.NewRedisStore(kv.RedisOptions{
			URL:        cfg.Redis.URL,
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			MaxRetries: cfg.Storage.MaxRetries,
		})

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, err
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		store := kv.NewPostgresStore(db, txmanager.NewTransactionManager(db), cfg.Storage.MaxRetries)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.OperationTimeout())
		defer cancel()
		if err := store.EnsureSchema(ctx); err != nil {
			log.Warn("Failed to ensure kv schema, will retry on first use: %v", err)
		}

		log.Info("Using postgres storage (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return store, nil

	default:
		log.Warn("Using in-memory storage: data is lost on restart")
		return kv.NewMemoryStore(), nil
	}
}

// newGateway создает провайдера уведомлений; второе значение освобождает его ресурсы
func newGateway(cfg *config.Config, location *time.Location, log *logger.Logger) (notifier.Gateway, func()) {
	composer := notifier.NewComposer(cfg.Business.Name, cfg.Notifications.BaseURL, location)
	timeout := time.Duration(cfg.Notifications.Timeout) * time.Second

	switch cfg.Notifications.Provider {
	case config.NotifierResend:
		client := notifier.NewEmailClient(
			cfg.Notifications.ResendURL,
			cfg.Notifications.ResendAPIKey,
			cfg.Notifications.From,
			composer,
			timeout,
			log,
		)
		return client, func() {}

	case config.NotifierKafka:
		publisher := notifier.NewKafkaNotifier(
			notifier.NewKafkaWriter(cfg.Notifications.KafkaBrokers, cfg.Notifications.KafkaTopic),
			composer,
			log,
		)
		// События также попадают в лог, чтобы их было видно без консьюмера
		gateway := notifier.Fanout{publisher, notifier.NewLogNotifier(composer, log)}
		return gateway, func() {
			if err := publisher.Close(); err != nil {
				log.Error("Failed to close kafka writer: %v", err)
			}
		}

	default:
		return notifier.NewLogNotifier(composer, log), func() {}
	}
}
