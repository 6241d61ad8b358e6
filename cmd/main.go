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

	chargeReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/charge_reservation"
	facilitiesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/facilities_crud"
	facilityMapHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/facility_map"
	mockChargeHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/mock_charge"
	paymentsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/payments_crud"
	readingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/readings_crud"
	reservationsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/reservations_crud"
	rolesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/roles_crud"
	sensorsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/sensors_crud"
	spaceStateHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/space_state"
	spacesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/spaces_crud"
	statsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/stats"
	usersHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/users_crud"
	vehiclesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/vehicles_crud"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/facility"
	paymentRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/payment"
	readingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reading"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
	roleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/role"
	sensorRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/sensor"
	spaceRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/space"
	userRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/user"
	vehicleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/vehicle"
	facilitiesService "github.com/m04kA/SMC-ParkingService/internal/service/facilities"
	paymentsService "github.com/m04kA/SMC-ParkingService/internal/service/payments"
	reservationsService "github.com/m04kA/SMC-ParkingService/internal/service/reservations"
	sensorsService "github.com/m04kA/SMC-ParkingService/internal/service/sensors"
	spacesService "github.com/m04kA/SMC-ParkingService/internal/service/spaces"
	statsService "github.com/m04kA/SMC-ParkingService/internal/service/stats"
	usersService "github.com/m04kA/SMC-ParkingService/internal/service/users"
	vehiclesService "github.com/m04kA/SMC-ParkingService/internal/service/vehicles"
	chargeReservationUC "github.com/m04kA/SMC-ParkingService/internal/usecase/charge_reservation"
	mockChargeUC "github.com/m04kA/SMC-ParkingService/internal/usecase/mock_charge"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
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

	log.Info("Starting SMC-ParkingService...")
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

	// Тариф биллинга
	ratePerHour, err := cfg.Tariff.RatePerHourDecimal()
	if err != nil {
		log.Fatal("Invalid tariff config: %v", err)
	}
	minimumCharge, err := cfg.Tariff.MinimumChargeDecimal()
	if err != nil {
		log.Fatal("Invalid tariff config: %v", err)
	}
	tariff := domain.Tariff{
		RatePerHour:   ratePerHour,
		MinimumCharge: minimumCharge,
	}
	log.Info("Tariff loaded (rate_per_hour=%s, minimum_charge=%s)",
		tariff.RatePerHour.StringFixed(2), tariff.MinimumCharge.StringFixed(2))

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Исполнитель запросов: с обёрткой метрик или без
	var dbExec dbmetrics.DBExecutor = db

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		dbExec = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем репозитории
	facilityRepository := facilityRepo.NewRepository(dbExec)
	spaceRepository := spaceRepo.NewRepository(dbExec)
	reservationRepository := reservationRepo.NewRepository(dbExec)
	paymentRepository := paymentRepo.NewRepository(dbExec)
	userRepository := userRepo.NewRepository(dbExec)
	roleRepository := roleRepo.NewRepository(dbExec)
	vehicleRepository := vehicleRepo.NewRepository(dbExec)
	sensorRepository := sensorRepo.NewRepository(dbExec)
	readingRepository := readingRepo.NewRepository(dbExec)

	// Инициализируем сервисы
	spacesSvc := spacesService.NewService(spaceRepository, cfg.Spaces.StrictTransitions, log)
	facilitiesSvc := facilitiesService.NewService(facilityRepository, spaceRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, log)
	usersSvc := usersService.NewService(userRepository, roleRepository, log)
	vehiclesSvc := vehiclesService.NewService(vehicleRepository, log)
	sensorsSvc := sensorsService.NewService(sensorRepository, readingRepository, log)
	statsSvc := statsService.NewService(reservationRepository, spaceRepository, log)

	// Инициализируем use cases
	chargeReservationUseCase := chargeReservationUC.NewUseCase(
		reservationRepository,
		paymentRepository,
		txMgr,
		tariff,
		log,
	)
	mockChargeUseCase := mockChargeUC.NewUseCase(paymentRepository, log)

	// Инициализируем handlers
	facilities := facilitiesHandler.NewHandler(facilitiesSvc, log)
	facilityMap := facilityMapHandler.NewHandler(facilitiesSvc, log)
	spaces := spacesHandler.NewHandler(spacesSvc, log)
	spaceState := spaceStateHandler.NewHandler(spacesSvc, log)
	reservations := reservationsHandler.NewHandler(reservationsSvc, log)
	payments := paymentsHandler.NewHandler(paymentsSvc, log)
	chargeReservation := chargeReservationHandler.NewHandler(chargeReservationUseCase, log)
	mockCharge := mockChargeHandler.NewHandler(mockChargeUseCase, log)
	users := usersHandler.NewHandler(usersSvc, log)
	roles := rolesHandler.NewHandler(usersSvc, log)
	vehicles := vehiclesHandler.NewHandler(vehiclesSvc, log)
	sensors := sensorsHandler.NewHandler(sensorsSvc, log)
	readings := readingsHandler.NewHandler(sensorsSvc, log)
	stats := statsHandler.NewHandler(statsSvc, log)

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

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Роли ---
	api.HandleFunc("/roles", roles.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/roles", roles.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/roles/{roleId}", roles.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/roles/{roleId}", roles.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/roles/{roleId}", roles.HandleDelete).Methods(http.MethodDelete)

	// --- Пользователи ---
	api.HandleFunc("/users", users.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/users", users.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", users.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", users.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/users/{userId}", users.HandleDelete).Methods(http.MethodDelete)

	// --- Парковки ---
	api.HandleFunc("/facilities", facilities.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/facilities", facilities.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/map", facilityMap.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}", facilities.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}", facilities.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/facilities/{facilityId}", facilities.HandleDelete).Methods(http.MethodDelete)

	// --- Парковочные места ---
	api.HandleFunc("/spaces", spaces.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/spaces", spaces.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}/state", spaceState.HandleSetState).Methods(http.MethodPatch)
	api.HandleFunc("/spaces/{spaceId}/{action}", spaceState.HandleAction).Methods(http.MethodPost)
	api.HandleFunc("/spaces/{spaceId}", spaces.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}", spaces.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/spaces/{spaceId}", spaces.HandleDelete).Methods(http.MethodDelete)

	// --- Транспорт ---
	api.HandleFunc("/vehicles", vehicles.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", vehicles.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}", vehicles.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}", vehicles.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{vehicleId}", vehicles.HandleDelete).Methods(http.MethodDelete)

	// --- Резервации ---
	api.HandleFunc("/reservations", reservations.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/reservations", reservations.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/charge", chargeReservation.HandleByReservation).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}", reservations.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", reservations.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{reservationId}", reservations.HandleDelete).Methods(http.MethodDelete)

	// --- Платежи ---
	api.HandleFunc("/payments/charge", chargeReservation.HandleByBody).Methods(http.MethodPost)
	api.HandleFunc("/payments/mock-charge", mockCharge.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments", payments.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/payments/{paymentId}", payments.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/payments/{paymentId}", payments.HandleDelete).Methods(http.MethodDelete)

	// --- Сенсоры и показания ---
	api.HandleFunc("/sensors", sensors.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/sensors", sensors.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/sensors/{sensorId}", sensors.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/sensors/{sensorId}", sensors.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/sensors/{sensorId}", sensors.HandleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/readings", readings.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/readings", readings.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/readings/{readingId}", readings.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/readings/{readingId}", readings.HandleDelete).Methods(http.MethodDelete)

	// --- Статистика ---
	api.HandleFunc("/stats/summary", stats.HandleSummary).Methods(http.MethodGet)
	api.HandleFunc("/stats/reservations-7d", stats.HandleSeries).Methods(http.MethodGet)

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
