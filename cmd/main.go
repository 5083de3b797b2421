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

	approveOwnerHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/approve_owner"
	confirmBookingHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/create_booking"
	createDiscountHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/create_discount"
	createReviewHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/create_review"
	createTournamentHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/create_tournament"
	createVenueHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/create_venue"
	deleteBookingHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/delete_booking"
	deleteDiscountHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/delete_discount"
	deleteVenueHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/delete_venue"
	getAvailableSlotsHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/get_bookings"
	getChatHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/get_chat"
	getDiscountsHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/get_discounts"
	getNotificationsHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/get_notifications"
	getOwnersHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/get_owners"
	getReviewsHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/get_reviews"
	getTournamentsHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/get_tournaments"
	getVenueHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/get_venue"
	getVenuesHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/get_venues"
	nearbyVenuesHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/nearby_venues"
	readNotificationHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/read_notification"
	registerOwnerHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/register_owner"
	registerPlayerHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/register_tournament_player"
	sendChatMessageHandler "github.com/m04kA/SVP-BookingService/internal/api/handlers/send_chat_message"
	"github.com/m04kA/SVP-BookingService/internal/api/middleware"
	"github.com/m04kA/SVP-BookingService/internal/config"
	bookingRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
	chatRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/chat"
	discountRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/discount"
	notificationRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/notification"
	ownerRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/owner"
	reviewRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/review"
	tournamentRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/tournament"
	venueRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/venue"
	geoProviderClient "github.com/m04kA/SVP-BookingService/internal/integrations/geoprovider"
	paymentClient "github.com/m04kA/SVP-BookingService/internal/integrations/payment"
	bookingsService "github.com/m04kA/SVP-BookingService/internal/service/bookings"
	chatsService "github.com/m04kA/SVP-BookingService/internal/service/chats"
	discountsService "github.com/m04kA/SVP-BookingService/internal/service/discounts"
	notificationsService "github.com/m04kA/SVP-BookingService/internal/service/notifications"
	ownersService "github.com/m04kA/SVP-BookingService/internal/service/owners"
	reviewsService "github.com/m04kA/SVP-BookingService/internal/service/reviews"
	tournamentsService "github.com/m04kA/SVP-BookingService/internal/service/tournaments"
	venuesService "github.com/m04kA/SVP-BookingService/internal/service/venues"
	createBookingUC "github.com/m04kA/SVP-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SVP-BookingService/internal/usecase/get_available_slots"
	nearbyVenuesUC "github.com/m04kA/SVP-BookingService/internal/usecase/nearby_venues"
	"github.com/m04kA/SVP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SVP-BookingService/pkg/logger"
	"github.com/m04kA/SVP-BookingService/pkg/metrics"
	"github.com/m04kA/SVP-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/SVP-BookingService/pkg/txmanager"
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

	log.Info("Starting SVP-BookingService...")
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

	// Инициализируем интеграционных клиентов
	payClient := paymentClient.NewClient(
		cfg.Payment.URL,
		time.Duration(cfg.Payment.Timeout)*time.Second,
		log,
	)
	geoClient := geoProviderClient.NewClient(
		cfg.GeoService.URL,
		time.Duration(cfg.GeoService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Payment=%s timeout=%ds, GeoService=%s timeout=%ds)",
		cfg.Payment.URL, cfg.Payment.Timeout, cfg.GeoService.URL, cfg.GeoService.Timeout)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Репозитории и transaction manager (с метриками или без)
	var executor bookingRepo.DBExecutor = db
	var txMgr TxManager = simpletxmanager.NewTransactionManager(db)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	}

	venueRepository := venueRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)
	discountRepository := discountRepo.NewRepository(executor)
	reviewRepository := reviewRepo.NewRepository(executor)
	chatRepository := chatRepo.NewRepository(executor)
	notificationRepository := notificationRepo.NewRepository(executor)
	ownerRepository := ownerRepo.NewRepository(executor)
	tournamentRepository := tournamentRepo.NewRepository(executor)

	// Инициализируем сервисы
	venueSvc := venuesService.NewService(venueRepository, reviewRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, chatRepository, notificationRepository, txMgr, log)
	discountSvc := discountsService.NewService(discountRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, venueRepository, log)
	chatSvc := chatsService.NewService(chatRepository, bookingRepository, log)
	notificationSvc := notificationsService.NewService(notificationRepository, log)
	ownerSvc := ownersService.NewService(ownerRepository, log)
	tournamentSvc := tournamentsService.NewService(tournamentRepository, venueRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		venueRepository,
		bookingRepository,
		discountRepository,
		chatRepository,
		notificationRepository,
		payClient,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(venueRepository, bookingRepository, log)
	nearbyVenuesUseCase := nearbyVenuesUC.NewUseCase(venueRepository, geoClient, log)

	// Инициализируем handlers
	getVenues := getVenuesHandler.NewHandler(venueSvc, log)
	getVenue := getVenueHandler.NewHandler(venueSvc, log)
	nearbyVenues := nearbyVenuesHandler.NewHandler(nearbyVenuesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getChat := getChatHandler.NewHandler(chatSvc, log)
	sendChatMessage := sendChatMessageHandler.NewHandler(chatSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	getReviews := getReviewsHandler.NewHandler(reviewSvc, log)
	registerOwner := registerOwnerHandler.NewHandler(ownerSvc, log)
	getTournaments := getTournamentsHandler.NewHandler(tournamentSvc, log)
	registerPlayer := registerPlayerHandler.NewHandler(tournamentSvc, log)

	createVenue := createVenueHandler.NewHandler(venueSvc, log)
	deleteVenue := deleteVenueHandler.NewHandler(venueSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	createDiscount := createDiscountHandler.NewHandler(discountSvc, log)
	getDiscounts := getDiscountsHandler.NewHandler(discountSvc, log)
	deleteDiscount := deleteDiscountHandler.NewHandler(discountSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	readNotification := readNotificationHandler.NewHandler(notificationSvc, log)
	approveOwner := approveOwnerHandler.NewHandler(ownerSvc, log)
	getOwners := getOwnersHandler.NewHandler(ownerSvc, log)
	createTournament := createTournamentHandler.NewHandler(tournamentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Площадки ---
	api.HandleFunc("/venues", getVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/nearby", nearbyVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	api.HandleFunc("/venues/{venueId}/reviews", getReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/reviews", createReview.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// --- Чат бронирования ---
	api.HandleFunc("/bookings/{bookingId}/chat", getChat.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/chat", sendChatMessage.Handle).Methods(http.MethodPost)

	// --- Заявки владельцев ---
	api.HandleFunc("/owners", registerOwner.Handle).Methods(http.MethodPost)

	// --- Турниры ---
	api.HandleFunc("/tournaments", getTournaments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{tournamentId}/players", registerPlayer.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Server.AdminToken))

	// --- Площадки ---
	admin.HandleFunc("/venues", createVenue.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/venues/{venueId}", deleteVenue.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Промокоды ---
	admin.HandleFunc("/discounts", createDiscount.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/discounts", getDiscounts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/discounts/{discountId}", deleteDiscount.Handle).Methods(http.MethodDelete)

	// --- Уведомления ---
	admin.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/read", readNotification.HandleAll).Methods(http.MethodPost)
	admin.HandleFunc("/notifications/{notificationId}/read", readNotification.Handle).Methods(http.MethodPost)

	// --- Владельцы ---
	admin.HandleFunc("/owners", getOwners.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/owners/{ownerId}/approve", approveOwner.Handle).Methods(http.MethodPost)

	// --- Турниры ---
	admin.HandleFunc("/tournaments", createTournament.Handle).Methods(http.MethodPost)

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
