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
	"github.com/redis/go-redis/v9"

	addChargeHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/add_charge"
	cancelReservationHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/check_availability"
	checkInHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/check_out"
	createReservationHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/create_reservation"
	createRoomHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/create_room"
	getClientReservationsHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_client_reservations"
	getOccupancyHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_occupancy"
	getReservationHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_reservation"
	quoteStayHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/quote_stay"
	setRoomActiveHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/set_room_active"
	updateRoomRateHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/update_room_rate"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/config"
	occupancyCache "github.com/m04kA/SMC-StayService/internal/infra/cache/occupancy"
	"github.com/m04kA/SMC-StayService/internal/infra/events"
	chargeRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/charge"
	reservationRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	clientServiceClient "github.com/m04kA/SMC-StayService/internal/integrations/clientservice"
	reservationsService "github.com/m04kA/SMC-StayService/internal/service/reservations"
	roomsService "github.com/m04kA/SMC-StayService/internal/service/rooms"
	checkAvailabilityUC "github.com/m04kA/SMC-StayService/internal/usecase/check_availability"
	checkOutUC "github.com/m04kA/SMC-StayService/internal/usecase/check_out"
	createReservationUC "github.com/m04kA/SMC-StayService/internal/usecase/create_reservation"
	getOccupancyUC "github.com/m04kA/SMC-StayService/internal/usecase/get_occupancy"
	quoteStayUC "github.com/m04kA/SMC-StayService/internal/usecase/quote_stay"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/logger"
	"github.com/m04kA/SMC-StayService/pkg/metrics"
	"github.com/m04kA/SMC-StayService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-StayService...")
	log.Info("Configuration loaded from %s", configPath)

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

	// Обёртка над БД: без метрик замеры просто не пишутся
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	roomRepository := roomRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	chargeRepository := chargeRepo.NewRepository(wrappedDB)

	// Кэш загрузки номеров. Без Redis кэш отключён и всё считается напрямую
	var redisClient occupancyCache.RedisClient
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, cache will degrade to direct computation: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Connected to Redis at %s (db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		}
		cancelPing()

		redisClient = rdb
	}
	cache := occupancyCache.NewCache(redisClient, cfg.Redis.Prefix, time.Duration(cfg.Redis.TTLSeconds)*time.Second)

	// Публикация событий о выезде. Пустой URL - публикация выключена
	rabbitURL := ""
	if cfg.RabbitMQ.Enabled {
		rabbitURL = cfg.RabbitMQ.URL
		log.Info("Check-out events will be published to queue %s", cfg.RabbitMQ.Queue)
	}
	publisher := events.NewPublisher(rabbitURL, cfg.RabbitMQ.Queue, time.Duration(cfg.RabbitMQ.DialTimeout)*time.Second, log)

	// Интеграционные клиенты
	clientClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ClientService=%s timeout=%ds)",
		cfg.ClientService.URL, cfg.ClientService.Timeout)

	// Сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		chargeRepository,
		cache,
		txMgr,
		log,
	)
	roomSvc := roomsService.NewService(roomRepository, cache, txMgr, log)

	// Use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		roomRepository,
		reservationRepository,
		metricsCollector,
		log,
	)
	getOccupancyUseCase := getOccupancyUC.NewUseCase(
		roomRepository,
		reservationRepository,
		cache,
		metricsCollector,
		txMgr,
		cfg.Occupancy.DefaultWindowDays,
		log,
	)
	quoteStayUseCase := quoteStayUC.NewUseCase(roomRepository, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		roomRepository,
		reservationRepository,
		clientClient,
		cache,
		metricsCollector,
		txMgr,
		log,
	)
	checkOutUseCase := checkOutUC.NewUseCase(
		reservationRepository,
		chargeRepository,
		publisher,
		cache,
		metricsCollector,
		txMgr,
		log,
	)

	// Handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getOccupancy := getOccupancyHandler.NewHandler(getOccupancyUseCase, log)
	quoteStay := quoteStayHandler.NewHandler(quoteStayUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	checkOut := checkOutHandler.NewHandler(checkOutUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	checkIn := checkInHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	addCharge := addChargeHandler.NewHandler(reservationSvc, log)
	getClientReservations := getClientReservationsHandler.NewHandler(reservationSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoomRate := updateRoomRateHandler.NewHandler(roomSvc, log)
	setRoomActive := setRoomActiveHandler.NewHandler(roomSvc, log)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные номера на период
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Загрузка номера
	api.HandleFunc("/rooms/{roomId}/occupancy", getOccupancy.Handle).Methods(http.MethodGet)

	// Расчёт стоимости проживания
	api.HandleFunc("/rooms/{roomId}/quote", quoteStay.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Bearer токен провайдера авторизации)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, cfg.Auth.Issuer))

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Стойка регистрации (персонал) ---
	protected.HandleFunc("/reservations/{reservationId}/check-in", checkIn.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/check-out", checkOut.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/charges", addCharge.Handle).Methods(http.MethodPost)

	// История проживаний клиента
	protected.HandleFunc("/clients/{clientId}/reservations", getClientReservations.Handle).Methods(http.MethodGet)

	// --- Номерной фонд (персонал) ---
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}/rate", updateRoomRate.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/rooms/{roomId}/active", setRoomActive.Handle).Methods(http.MethodPatch)

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
