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

	checkBookingHandler "github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers/check_booking"
	confirmBookingHandler "github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers/confirm_booking"
	getEntryHandler "github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers/get_entry"
	getOpeningHoursHandler "github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers/get_opening_hours"
	getReminderBookingsHandler "github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers/get_reminder_bookings"
	getRoomsAvailabilityHandler "github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers/get_rooms_availability"
	updateEntryHandler "github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers/update_entry"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/config"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/infra/migrations"
	entryRepo "github.com/m04kA/SMC-RoomAvailabilityService/internal/infra/storage/entry"
	scheduleRepo "github.com/m04kA/SMC-RoomAvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/integrations/notifier"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/scheduler"
	entriesService "github.com/m04kA/SMC-RoomAvailabilityService/internal/service/entries"
	confirmBookingUC "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/confirm_booking"
	getOpeningHoursUC "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/get_opening_hours"
	getRoomsAvailabilityUC "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/get_rooms_availability"
	sendRemindersUC "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/send_reminders"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/metrics"
)

// bookingNotifier публикация событий о записях (Redis или заглушка)
type bookingNotifier interface {
	BookingConfirmed(ctx context.Context, entry *domain.EntryWithRoomAndArea) error
	BookingReminder(ctx context.Context, entry *domain.ReminderEntry, code string) error
}

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

	log.Info("Starting SMC-RoomAvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Engine.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Engine.Timezone, err)
	}

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

	if cfg.Migrations.AutoApply {
		if err := migrations.Up(db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Инициализируем репозитории (с метриками или без)
	var dbExec dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		dbExec = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	scheduleRepository := scheduleRepo.NewRepository(dbExec)
	entryRepository := entryRepo.NewRepository(dbExec)

	// Уведомления через Redis pub/sub
	var (
		events      bookingNotifier = notifier.Nop{}
		redisClient *redis.Client
	)
	if cfg.Redis.Enabled {
		redisClient, err = notifier.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		events = notifier.NewClient(redisClient, cfg.Redis.Channel, log)
		log.Info("Notifier initialized (redis=%s, channel=%s)", cfg.Redis.Addr, cfg.Redis.Channel)
	}

	// Инициализируем сервисы
	entrySvc := entriesService.NewService(entryRepository, log)

	// Инициализируем use cases
	openingHoursUseCase := getOpeningHoursUC.NewUseCase(
		scheduleRepository,
		entryRepository,
		metricsCollector,
		getOpeningHoursUC.Config{
			Location:          location,
			DefaultResolution: cfg.Engine.DefaultResolution,
			MaxParallelDays:   cfg.Engine.MaxParallelDays,
		},
		log,
	)

	roomsAvailabilityUseCase := getRoomsAvailabilityUC.NewUseCase(
		scheduleRepository,
		entryRepository,
		metricsCollector,
		location,
		log,
	)

	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		entryRepository,
		events,
		metricsCollector,
		log,
	)

	// Планировщик напоминаний
	var jobs *scheduler.Service
	if cfg.Reminders.Enabled {
		sendRemindersUseCase, err := sendRemindersUC.NewUseCase(
			entryRepository,
			events,
			metricsCollector,
			sendRemindersUC.Config{Lead: cfg.Reminders.Lead(), Window: cfg.Reminders.Window()},
			log,
		)
		if err != nil {
			log.Fatal("Failed to create reminders use case: %v", err)
		}

		jobs, err = scheduler.New(log)
		if err != nil {
			log.Fatal("Failed to create scheduler: %v", err)
		}
		timeout := time.Duration(cfg.Reminders.Timeout) * time.Second
		if err := jobs.RegisterReminderJob(sendRemindersUseCase, cfg.Reminders.Cron, timeout); err != nil {
			log.Fatal("Failed to register reminder job: %v", err)
		}
		jobs.Start()
	}

	// Инициализируем handlers
	openingHours := getOpeningHoursHandler.NewHandler(openingHoursUseCase, cfg.Presentation, location, log)
	roomsAvailability := getRoomsAvailabilityHandler.NewHandler(roomsAvailabilityUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, location, log)
	getEntry := getEntryHandler.NewHandler(entrySvc, log)
	checkBooking := checkBookingHandler.NewHandler(entrySvc, log)
	getReminderBookings := getReminderBookingsHandler.NewHandler(entrySvc, log)
	updateEntry := updateEntryHandler.NewHandler(entrySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix(cfg.Server.APIPrefix).Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Часы работы: неделя и один день
	api.HandleFunc("/openinghours/day/{date}/{roomId}/{extendedRoomId}", openingHours.HandleDay).Methods(http.MethodGet)
	api.HandleFunc("/openinghours/{date}/{roomId}/{extendedRoomId}", openingHours.HandleWeek).Methods(http.MethodGet)

	// Статус комнат в час метки времени
	api.HandleFunc("/roomsavailability/{areaId}/{timestamp}", roomsAvailability.HandleArea).Methods(http.MethodGet)
	api.HandleFunc("/roomsavailability/{areaId}/{roomId}/{timestamp}", roomsAvailability.HandleRoom).Methods(http.MethodGet)

	// Записи
	api.HandleFunc("/entry/confirm/{confirmationCode}", confirmBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/entry/{id:[0-9]+}", getEntry.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/checkbooking", checkBooking.HandleCheck).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/validatebooking/{userId}", checkBooking.HandleValidate).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(cfg.Auth.JWTSecret, log))

	protected.HandleFunc("/reminderbookings/{from}/{to}/{status}/{type}", getReminderBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/entrysetconfirmcode/{id}/{code}", updateEntry.HandleSetConfirmationCode).Methods(http.MethodPut)
	protected.HandleFunc("/entrysetreminded/{id}", updateEntry.HandleSetReminded).Methods(http.MethodPut)

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

	if jobs != nil {
		if err := jobs.Stop(); err != nil {
			log.Error("Scheduler stopped with error: %v", err)
		}
	}

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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
