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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBlockerHandler "github.com/m04kA/SMC-CarWashBot/internal/api/handlers/create_blocker"
	deleteBlockerHandler "github.com/m04kA/SMC-CarWashBot/internal/api/handlers/delete_blocker"
	getBlockerHandler "github.com/m04kA/SMC-CarWashBot/internal/api/handlers/get_blocker"
	getBlockersHandler "github.com/m04kA/SMC-CarWashBot/internal/api/handlers/get_blockers"
	getConfigurationHandler "github.com/m04kA/SMC-CarWashBot/internal/api/handlers/get_configuration"
	handleMessageHandler "github.com/m04kA/SMC-CarWashBot/internal/api/handlers/handle_message"
	"github.com/m04kA/SMC-CarWashBot/internal/api/middleware"
	"github.com/m04kA/SMC-CarWashBot/internal/config"
	blockerRepo "github.com/m04kA/SMC-CarWashBot/internal/infra/storage/blocker"
	reservationRepo "github.com/m04kA/SMC-CarWashBot/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CarWashBot/internal/infra/storage/state"
	"github.com/m04kA/SMC-CarWashBot/internal/integrations/carwashapi"
	"github.com/m04kA/SMC-CarWashBot/internal/integrations/knowledge"
	"github.com/m04kA/SMC-CarWashBot/internal/integrations/mailer"
	"github.com/m04kA/SMC-CarWashBot/internal/integrations/recognizer"
	blockersService "github.com/m04kA/SMC-CarWashBot/internal/service/blockers"
	"github.com/m04kA/SMC-CarWashBot/internal/service/conversation"
	"github.com/m04kA/SMC-CarWashBot/internal/service/dialog"
	reservationsService "github.com/m04kA/SMC-CarWashBot/internal/service/reservations"
	"github.com/m04kA/SMC-CarWashBot/internal/service/wellknown"
	createBlockerUC "github.com/m04kA/SMC-CarWashBot/internal/usecase/create_blocker"
	handleTurnUC "github.com/m04kA/SMC-CarWashBot/internal/usecase/handle_turn"
	"github.com/m04kA/SMC-CarWashBot/pkg/keylock"
	"github.com/m04kA/SMC-CarWashBot/pkg/logger"
	"github.com/m04kA/SMC-CarWashBot/pkg/metrics"
	"github.com/m04kA/SMC-CarWashBot/pkg/txmanager"
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

	log.Info("Starting SMC-CarWashBot...")

	// Инициализируем метрики (если включены). nil *metrics.Metrics безопасен для вызовов.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
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

	txMgr := txmanager.NewTransactionManager(db)

	// Хранилище состояния диалогов
	var stateRepository conversation.Repository
	switch cfg.State.Backend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		stateRepository = state.NewRedisRepository(redisClient, cfg.State.TTLDuration())
	case "postgres":
		stateRepository = state.NewPostgresRepository(db)
	default:
		stateRepository = state.NewMemoryRepository()
	}
	log.Info("Conversation state backend: %s", cfg.State.Backend)

	// Инициализируем интеграционных клиентов
	bookingAPI := carwashapi.NewClient(cfg.BookingAPI.URL, time.Duration(cfg.BookingAPI.Timeout)*time.Second, log)
	classifier := recognizer.NewClient(
		cfg.Recognizer.Endpoint,
		cfg.Recognizer.Key,
		cfg.Recognizer.MinScore,
		time.Duration(cfg.Recognizer.Timeout)*time.Second,
		log,
	)
	mail := mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	log.Info("Integration clients initialized (BookingAPI=%s, Recognizer=%s)", cfg.BookingAPI.URL, cfg.Recognizer.Endpoint)

	// База знаний с перезагрузкой при изменении файла
	kb := knowledge.NewBase(cfg.Knowledge.File, cfg.Knowledge.MinScore, log)
	if err := kb.Load(); err != nil {
		log.Fatal("Failed to load knowledge base: %v", err)
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if cfg.Knowledge.Watch {
		go func() {
			if err := kb.WatchAndReload(watchCtx); err != nil {
				log.Error("Knowledge base watcher stopped: %v", err)
			}
		}()
	}

	// Репозитории
	blockerRepository := blockerRepo.NewRepository(db)
	reservationRepository := reservationRepo.NewRepository(db)

	// Сервисы
	reservationSvc := reservationsService.NewService(bookingAPI, log)
	blockerSvc := blockersService.NewService(blockerRepository, log)
	wellknownSvc := wellknown.NewService(cfg.Bot.Companies)
	engine := dialog.NewEngine(
		conversation.NewDialogStore(stateRepository),
		bookingAPI,
		reservationSvc,
		recognizer.NewDateResolver(classifier),
		metricsCollector,
		log,
	)

	// Use cases
	handleTurnUseCase := handleTurnUC.NewUseCase(
		engine,
		classifier,
		kb,
		reservationSvc,
		conversation.NewProfileStore(stateRepository),
		keylock.New(),
		metricsCollector,
		log,
	)
	createBlockerUseCase := createBlockerUC.NewUseCase(
		blockerRepository,
		reservationRepository,
		mail,
		txMgr,
		metricsCollector,
		cfg.SMTP.Contact,
		log,
	)

	// Handlers
	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	handleMessage := handleMessageHandler.NewHandler(handleTurnUseCase, limiter, log)
	getConfiguration := getConfigurationHandler.NewHandler(wellknownSvc)
	createBlocker := createBlockerHandler.NewHandler(createBlockerUseCase, log)
	getBlockers := getBlockersHandler.NewHandler(blockerSvc, log)
	getBlocker := getBlockerHandler.NewHandler(blockerSvc, log)
	deleteBlocker := deleteBlockerHandler.NewHandler(blockerSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Сообщения канала (токен пользователя для API автомойки опционален)
	api.HandleFunc("/messages", handleMessage.Handle).Methods(http.MethodPost)

	// Публичная конфигурация автомойки
	api.HandleFunc("/.well-known/configuration", getConfiguration.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют JWT администратора)
	// ============================================================

	admin := api.PathPrefix("/blockers").Subrouter()
	admin.Use(limiter.ByClientIP)
	admin.Use(middleware.AdminAuth([]byte(cfg.Auth.JWTSecret), log))

	admin.HandleFunc("", getBlockers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("", createBlocker.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/{blockerId}", getBlocker.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/{blockerId}", deleteBlocker.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stopWatch()

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
