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

	"github.com/codeGROOVE-dev/retry"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers"
	blocksHandler "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers/blocks"
	cancelAppointmentHandler "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers/list_appointments"
	professionalsHandler "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers/professionals"
	servicesHandler "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers/services"
	updateAppointmentStatusHandler "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers/update_appointment_status"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/middleware"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/config"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/cache"
	appointmentRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/appointment"
	blockRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/block"
	professionalRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/professional"
	serviceRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/service"
	appointmentsService "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/appointments"
	blocksService "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/blocks"
	catalogService "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/catalog"
	professionalsService "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/professionals"
	createAppointmentUC "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/usecase/get_available_slots"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/dbmetrics"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/logger"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/metrics"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/txmanager"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting agendamento service...")
	log.Info("Configuration loaded from %s", configPath)

	policy, err := cfg.Booking.Policy()
	if err != nil {
		log.Fatal("Invalid booking timezone %q: %v", cfg.Booking.Timezone, err)
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

	// Проверяем соединение; при старте в docker-compose база может подняться позже сервиса
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	err = retry.Do(
		func() error {
			return db.PingContext(pingCtx)
		},
		retry.Context(pingCtx),
		retry.Attempts(cfg.Database.ConnectAttempts),
		retry.Delay(time.Second),
		retry.MaxDelay(10*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("Database is not ready (attempt %d): %v", n+1, err)
		}),
	)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обёртка пишет метрики запросов; при выключенных метриках просто проксирует
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	professionalRepository := professionalRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	blockRepository := blockRepo.NewRepository(wrappedDB)

	// Кеш справочников (мастера и услуги) поверх репозиториев
	catalogCache := cache.NewCatalog(
		professionalRepository,
		serviceRepository,
		cfg.Cache.TTL(),
		cfg.Cache.MaxSize,
		log,
	)
	log.Info("Catalog cache initialized (ttl=%s, max_size=%d)", cfg.Cache.TTL(), cfg.Cache.MaxSize)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogCache,
		appointmentRepository,
		blockRepository,
		policy,
		metricsCollector,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		catalogCache,
		appointmentRepository,
		blockRepository,
		txMgr,
		policy,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	professionalSvc := professionalsService.NewService(professionalRepository, catalogCache, log)
	catalogSvc := catalogService.NewService(serviceRepository, catalogCache, log)
	blockSvc := blocksService.NewService(blockRepository, catalogCache, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	professionals := professionalsHandler.NewHandler(professionalSvc, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	blocks := blocksHandler.NewHandler(blockSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := wrappedDB.PingContext(req.Context()); err != nil {
			log.Error("GET /healthz - Database is unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, "banco de dados indisponível")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты мастера на дату для услуги
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Справочники для формы записи
	api.HandleFunc("/professionals", professionals.List).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}", professionals.Get).Methods(http.MethodGet)
	api.HandleFunc("/services", services.List).Methods(http.MethodGet)

	// Создание записи клиентом (с ограничением частоты, если включено)
	var createAppointmentRoute http.Handler = http.HandlerFunc(createAppointment.Handle)
	if cfg.RateLimit.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
		})
		defer rdb.Close()

		limiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window(), "ratelimit:appointments", true, log)
		createAppointmentRoute = limiter.Middleware(createAppointmentRoute)
		log.Info("Rate limiting enabled for POST /appointments (limit=%d, window=%s, redis=%s)",
			cfg.RateLimit.Limit, cfg.RateLimit.Window(), cfg.RateLimit.RedisAddr)
	}
	api.Handle("/appointments", createAppointmentRoute).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth)

	// --- Агенда ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Мастера и услуги ---
	admin.HandleFunc("/professionals", professionals.Create).Methods(http.MethodPost)
	admin.HandleFunc("/professionals/{professionalId}", professionals.Update).Methods(http.MethodPut)
	admin.HandleFunc("/services", services.Create).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", services.Update).Methods(http.MethodPut)

	// --- Блокировки времени ---
	admin.HandleFunc("/blocks", blocks.List).Methods(http.MethodGet)
	admin.HandleFunc("/blocks", blocks.Create).Methods(http.MethodPost)
	admin.HandleFunc("/blocks/{blockId}", blocks.Delete).Methods(http.MethodDelete)

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
