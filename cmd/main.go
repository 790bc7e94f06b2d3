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
	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addDayOffHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/add_day_off"
	cancelBookingHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/cancel_booking"
	cancelRescheduleHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/cancel_reschedule"
	createBookingHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/get_client_bookings"
	getFreeDatesHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/get_free_dates"
	getFreeSlotsHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/get_free_slots"
	getMasterBookingsHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/get_master_bookings"
	getRescheduleHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/get_reschedule"
	getScheduleHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/get_schedule"
	getStatisticsHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/get_statistics"
	listReschedulesHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/list_reschedules"
	offerRescheduleHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/offer_reschedule"
	removeDayOffHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/remove_day_off"
	requestRescheduleHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/request_reschedule"
	resolveRescheduleHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/resolve_reschedule"
	setWorkHoursHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/set_work_hours"
	updateBookingStatusHandler "github.com/avdeec/salon-booking-service/internal/api/handlers/update_booking_status"
	"github.com/avdeec/salon-booking-service/internal/api/middleware"
	"github.com/avdeec/salon-booking-service/internal/config"
	"github.com/avdeec/salon-booking-service/internal/domain"
	bookingRepo "github.com/avdeec/salon-booking-service/internal/infra/storage/booking"
	negotiationRepo "github.com/avdeec/salon-booking-service/internal/infra/storage/negotiation"
	scheduleRepo "github.com/avdeec/salon-booking-service/internal/infra/storage/schedule"
	notifyClient "github.com/avdeec/salon-booking-service/internal/integrations/notify"
	sheetsClient "github.com/avdeec/salon-booking-service/internal/integrations/sheets"
	"github.com/avdeec/salon-booking-service/internal/jobs/mirror"
	"github.com/avdeec/salon-booking-service/internal/reminder"
	bookingsService "github.com/avdeec/salon-booking-service/internal/service/bookings"
	rescheduleService "github.com/avdeec/salon-booking-service/internal/service/reschedule"
	scheduleService "github.com/avdeec/salon-booking-service/internal/service/schedule"
	createBookingUC "github.com/avdeec/salon-booking-service/internal/usecase/create_booking"
	getFreeDatesUC "github.com/avdeec/salon-booking-service/internal/usecase/get_free_dates"
	getFreeSlotsUC "github.com/avdeec/salon-booking-service/internal/usecase/get_free_slots"
	"github.com/avdeec/salon-booking-service/pkg/dbmetrics"
	"github.com/avdeec/salon-booking-service/pkg/keymutex"
	"github.com/avdeec/salon-booking-service/pkg/logger"
	"github.com/avdeec/salon-booking-service/pkg/metrics"
	"github.com/avdeec/salon-booking-service/pkg/txmanager"
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

	log.Info("Starting salon-booking-service...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		negotiationRepository *negotiationRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		txMgr                 *txmanager.TransactionManager
	)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		// Прозрачная обёртка без метрик
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	bookingRepository = bookingRepo.NewRepository(wrappedDB)
	negotiationRepository = negotiationRepo.NewRepository(wrappedDB)
	scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
	txMgr = txmanager.NewTransactionManager(wrappedDB)

	// Зеркалирование во внешнюю таблицу через очередь задач (best-effort)
	var mirrorEnqueuer mirrorSink = noopMirror{}
	var asynqClient *asynq.Client
	var asynqServer *asynq.Server

	if cfg.Sheets.Enabled {
		redisOpt := asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}

		asynqClient = asynq.NewClient(redisOpt)
		defer asynqClient.Close()
		mirrorEnqueuer = mirror.NewEnqueuer(asynqClient, log)

		sheets := sheetsClient.NewClient(
			cfg.Sheets.URL,
			cfg.Sheets.Token,
			time.Duration(cfg.Sheets.Timeout)*time.Second,
			log,
		)
		mirrorHandler := mirror.NewHandler(sheets, log)

		asynqServer = asynq.NewServer(redisOpt, asynq.Config{Concurrency: 5})
		taskMux := asynq.NewServeMux()
		taskMux.HandleFunc(mirror.TypeUpsert, mirrorHandler.ProcessTask)

		go func() {
			if err := asynqServer.Run(taskMux); err != nil {
				log.Error("Mirror worker stopped: %v", err)
			}
		}()
		log.Info("Sheets mirror worker started (redis=%s)", cfg.Redis.Addr)
	} else {
		log.Info("Sheets mirror disabled")
	}

	// Клиент уведомлений
	var notifier notifySink = noopNotifier{}
	if cfg.Notify.Enabled {
		notifier = notifyClient.NewClient(
			cfg.Notify.URL,
			cfg.Notify.Token,
			time.Duration(cfg.Notify.Timeout)*time.Second,
			log,
		)
		log.Info("Notification client initialized (url=%s)", cfg.Notify.URL)
	} else {
		log.Info("Notifications disabled")
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(scheduleRepository, cfg.Booking.SlotDurationMinutes, log)

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		mirrorEnqueuer,
		notifier,
		log,
	)

	// Инициализируем use cases
	getFreeSlotsUseCase := getFreeSlotsUC.NewUsecase(
		scheduleSvc,
		bookingRepository,
		&getFreeSlotsUC.RealTimeProvider{},
		log,
	)

	getFreeDatesUseCase := getFreeDatesUC.NewUsecase(
		scheduleSvc,
		bookingRepository,
		&getFreeDatesUC.RealTimeProvider{},
		cfg.Booking.FreeDatesDaysAhead,
		log,
	)

	createBookingUseCase := createBookingUC.NewUsecase(
		bookingRepository,
		scheduleSvc,
		txMgr,
		mirrorEnqueuer,
		notifier,
		&createBookingUC.RealTimeProvider{},
		cfg.Booking.MasterUserID,
		log,
	)

	rescheduleSvc := rescheduleService.NewService(
		bookingRepository,
		negotiationRepository,
		getFreeSlotsUseCase,
		txMgr,
		keymutex.New(),
		mirrorEnqueuer,
		notifier,
		cfg.Booking.MasterUserID,
		log,
	)

	// Сервис напоминаний
	var reminderSvc *reminder.Service
	if cfg.Reminders.Enabled {
		reminderSvc = reminder.NewService(
			bookingRepository,
			notifier,
			&reminder.RealTimeProvider{},
			time.Duration(cfg.Reminders.CheckIntervalSeconds)*time.Second,
			log,
		)
		reminderSvc.Start(context.Background())
		log.Info("Reminder loop started (interval=%ds)", cfg.Reminders.CheckIntervalSeconds)
	} else {
		log.Info("Reminders disabled")
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getMasterBookings := getMasterBookingsHandler.NewHandler(bookingSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(bookingSvc, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	getFreeDates := getFreeDatesHandler.NewHandler(getFreeDatesUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	setWorkHours := setWorkHoursHandler.NewHandler(scheduleSvc, log)
	addDayOff := addDayOffHandler.NewHandler(scheduleSvc, log)
	removeDayOff := removeDayOffHandler.NewHandler(scheduleSvc, log)
	requestReschedule := requestRescheduleHandler.NewHandler(rescheduleSvc, log)
	offerReschedule := offerRescheduleHandler.NewHandler(rescheduleSvc, log)
	resolveReschedule := resolveRescheduleHandler.NewHandler(rescheduleSvc, log)
	cancelReschedule := cancelRescheduleHandler.NewHandler(rescheduleSvc, log)
	getReschedule := getRescheduleHandler.NewHandler(rescheduleSvc, log)
	listReschedules := listReschedulesHandler.NewHandler(rescheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты API требуют идентификации через X-User-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identity(cfg.Booking.MasterUserID))

	// --- Записи ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Панель мастера ---
	api.HandleFunc("/master/bookings", getMasterBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/master/statistics", getStatistics.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/free-dates", getFreeDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/work-hours/{weekday}", setWorkHours.Handle).Methods(http.MethodPut)
	api.HandleFunc("/schedule/days-off", addDayOff.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule/days-off/{date}", removeDayOff.Handle).Methods(http.MethodDelete)

	// --- Переносы ---
	api.HandleFunc("/reschedules/requests", requestReschedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reschedules/offers", offerReschedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reschedules/{shadowId}/accept", resolveReschedule.HandleAccept).Methods(http.MethodPost)
	api.HandleFunc("/reschedules/{shadowId}/reject", resolveReschedule.HandleReject).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/reschedule/cancel", cancelReschedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reschedules/{bookingId}", getReschedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reschedules", listReschedules.Handle).Methods(http.MethodGet)

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

	if reminderSvc != nil {
		reminderSvc.Stop()
		log.Info("Reminder loop stopped")
	}

	if asynqServer != nil {
		asynqServer.Shutdown()
		log.Info("Mirror worker stopped")
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

	log.Info("Server stopped gracefully")
}

// mirrorSink и notifySink позволяют подменять выключенные интеграции заглушками

type mirrorSink interface {
	UpsertBooking(ctx context.Context, b *domain.Booking)
}

type notifySink interface {
	Send(ctx context.Context, msg *notifyClient.Message) error
}

type noopMirror struct{}

func (noopMirror) UpsertBooking(context.Context, *domain.Booking) {}

type noopNotifier struct{}

func (noopNotifier) Send(context.Context, *notifyClient.Message) error { return nil }
