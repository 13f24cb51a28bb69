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
	"github.com/rs/cors"

	cartHandler "github.com/illapa-dev/TourOperatorService/internal/api/handlers/cart"
	ordersHandler "github.com/illapa-dev/TourOperatorService/internal/api/handlers/orders"
	toursHandler "github.com/illapa-dev/TourOperatorService/internal/api/handlers/tours"
	transportHandler "github.com/illapa-dev/TourOperatorService/internal/api/handlers/transport"
	uploadsHandler "github.com/illapa-dev/TourOperatorService/internal/api/handlers/uploads"
	usersHandler "github.com/illapa-dev/TourOperatorService/internal/api/handlers/users"
	"github.com/illapa-dev/TourOperatorService/internal/api/middleware"
	"github.com/illapa-dev/TourOperatorService/internal/config"
	cartStore "github.com/illapa-dev/TourOperatorService/internal/infra/cache/cart"
	tourCache "github.com/illapa-dev/TourOperatorService/internal/infra/cache/tour"
	orderEvents "github.com/illapa-dev/TourOperatorService/internal/infra/events/orders"
	"github.com/illapa-dev/TourOperatorService/internal/infra/media"
	orderRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/order"
	tourRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/tour"
	transportRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/transport"
	userRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/user"
	cartsService "github.com/illapa-dev/TourOperatorService/internal/service/carts"
	ordersService "github.com/illapa-dev/TourOperatorService/internal/service/orders"
	toursService "github.com/illapa-dev/TourOperatorService/internal/service/tours"
	transportService "github.com/illapa-dev/TourOperatorService/internal/service/transport"
	usersService "github.com/illapa-dev/TourOperatorService/internal/service/users"
	vouchersService "github.com/illapa-dev/TourOperatorService/internal/service/vouchers"
	checkoutCartUC "github.com/illapa-dev/TourOperatorService/internal/usecase/checkout_cart"
	createOrderUC "github.com/illapa-dev/TourOperatorService/internal/usecase/create_order"
	orderCalendarUC "github.com/illapa-dev/TourOperatorService/internal/usecase/get_order_calendar"
	"github.com/illapa-dev/TourOperatorService/pkg/dbmetrics"
	"github.com/illapa-dev/TourOperatorService/pkg/logger"
	"github.com/illapa-dev/TourOperatorService/pkg/metrics"
	"github.com/illapa-dev/TourOperatorService/pkg/simpletxmanager"
	"github.com/illapa-dev/TourOperatorService/pkg/txmanager"
)

func main() {
	// Cargamos la configuración
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializamos el logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting TourOperatorService...")
	log.Info("Configuration loaded from config.toml")

	// Inicializamos las métricas (si están habilitadas)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Conectamos con la base de datos
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configuramos el connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verificamos la conexión
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Conectamos con Redis (carritos y caché de tours destacados)
	redisClient := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: time.Duration(cfg.Redis.DialTimeout) * time.Second,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	cancelPing()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Publicador de eventos de reservas
	var publisher *orderEvents.Publisher
	if cfg.Kafka.Enabled {
		publisher = orderEvents.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		publisher = orderEvents.NewDisabledPublisher()
		log.Info("Kafka publisher disabled")
	}
	defer publisher.Close()

	// Almacén de imágenes subidas
	mediaStore, err := media.NewStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize media store: %v", err)
	}

	// Inicializamos los repositorios (con métricas o sin)
	var (
		orderRepository     *orderRepo.Repository
		tourRepository      *tourRepo.Repository
		transportRepository *transportRepo.Repository
		userRepository      *userRepo.Repository
	)

	// Interfaz del transaction manager usada por los use cases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Repositorios con la envoltura de métricas
		orderRepository = orderRepo.NewRepository(wrappedDB)
		tourRepository = tourRepo.NewRepository(wrappedDB)
		transportRepository = transportRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Repositorios sin métricas
		orderRepository = orderRepo.NewRepository(db)
		tourRepository = tourRepo.NewRepository(db)
		transportRepository = transportRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Almacenes sobre Redis
	carts := cartStore.NewStore(redisClient)
	topTours := tourCache.NewCache(redisClient, time.Duration(cfg.Redis.TopToursTTL)*time.Second)

	// Inicializamos los servicios
	tourSvc := toursService.NewService(tourRepository, topTours, log)
	transportSvc := transportService.NewService(transportRepository, log)
	orderSvc := ordersService.NewService(orderRepository, publisher, log)
	userSvc := usersService.NewService(userRepository, log)
	cartSvc := cartsService.NewService(carts, tourRepository, log)
	voucherSvc := vouchersService.NewService(orderRepository, vouchersService.CompanyInfo{
		Name:          cfg.Company.Name,
		PublicBaseURL: cfg.Company.PublicBaseURL,
		WhatsAppPhone: cfg.Company.WhatsAppPhone,
	}, log)

	// Inicializamos los use cases
	createOrderUseCase := createOrderUC.NewUseCase(
		orderRepository,
		tourRepository,
		publisher,
		txMgr,
		log,
	)
	checkoutCartUseCase := checkoutCartUC.NewUseCase(
		carts,
		orderRepository,
		publisher,
		txMgr,
		log,
	)
	calendarUseCase := orderCalendarUC.NewUseCase(orderRepository, log)

	// Inicializamos los handlers
	tours := toursHandler.NewHandler(tourSvc, transportSvc, log)
	transport := transportHandler.NewHandler(transportSvc, log)
	orders := ordersHandler.NewHandler(createOrderUseCase, calendarUseCase, orderSvc, voucherSvc, log)
	users := usersHandler.NewHandler(userSvc, log)
	cart := cartHandler.NewHandler(cartSvc, checkoutCartUseCase, log)
	uploads := uploadsHandler.NewHandler(mediaStore, cfg.Uploads.MaxSizeMB, log)

	// Configuramos el router
	r := mux.NewRouter()

	// Middleware de métricas HTTP (si están habilitadas)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (público, sin autenticación)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Imágenes subidas (servidas como estáticos)
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))),
	).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Limitador de peticiones para los endpoints públicos de escritura
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	// ============================================================
	// PUBLIC ROUTES (sin autenticación)
	// ============================================================

	// Catálogo de tours
	api.HandleFunc("/tours", tours.List).Methods(http.MethodGet)
	api.HandleFunc("/tours/top", tours.Top).Methods(http.MethodGet)
	api.HandleFunc("/tours/slug/{slug}", tours.GetBySlug).Methods(http.MethodGet)
	api.HandleFunc("/tours/{tourId:[0-9]+}", tours.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/tours/{tourId:[0-9]+}/transport", tours.TransportOptions).Methods(http.MethodGet)

	// Opciones de transporte
	api.HandleFunc("/transport", transport.List).Methods(http.MethodGet)
	api.HandleFunc("/transport/{transportId:[0-9]+}", transport.GetByID).Methods(http.MethodGet)

	// Registro e inicio de sesión
	api.Handle("/users", rateLimiter.Middleware(http.HandlerFunc(users.Register))).Methods(http.MethodPost)
	api.Handle("/users/login", rateLimiter.Middleware(http.HandlerFunc(users.Login))).Methods(http.MethodPost)

	// Creación directa de una reserva (formulario público)
	api.Handle("/orders", rateLimiter.Middleware(http.HandlerFunc(orders.Create))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (requieren X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Perfil propio ---
	protected.HandleFunc("/users/me", users.Me).Methods(http.MethodGet)

	// --- Carrito ---
	protected.HandleFunc("/cart", cart.Get).Methods(http.MethodGet)
	protected.HandleFunc("/cart", cart.Clear).Methods(http.MethodDelete)
	protected.HandleFunc("/cart", cart.AddItem).Methods(http.MethodPost)
	protected.HandleFunc("/cart/items", cart.AddItem).Methods(http.MethodPost)
	protected.HandleFunc("/cart/items/{itemId}", cart.UpdateItem).Methods(http.MethodPatch)
	protected.HandleFunc("/cart/items/{itemId}", cart.RemoveItem).Methods(http.MethodDelete)
	protected.HandleFunc("/cart/checkout", cart.Checkout).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (requieren rol admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth)
	admin.Use(middleware.AdminOnly(userSvc))

	// --- Gestión de reservas (dashboard) ---
	admin.HandleFunc("/orders", orders.List).Methods(http.MethodGet)
	admin.HandleFunc("/orders/stats", orders.Stats).Methods(http.MethodGet)
	admin.HandleFunc("/orders/calendar", orders.Calendar).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{orderId:[0-9]+}", orders.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{orderId:[0-9]+}/voucher", orders.Voucher).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{orderId:[0-9]+}", orders.Update).Methods(http.MethodPut, http.MethodPatch)
	admin.HandleFunc("/orders/{orderId:[0-9]+}/status", orders.UpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/orders/{orderId:[0-9]+}/cancel", orders.Cancel).Methods(http.MethodPost)
	admin.HandleFunc("/orders/{orderId:[0-9]+}", orders.Delete).Methods(http.MethodDelete)

	// --- Gestión del catálogo ---
	admin.HandleFunc("/tours", tours.Create).Methods(http.MethodPost)
	admin.HandleFunc("/tours/{tourId:[0-9]+}", tours.Update).Methods(http.MethodPut, http.MethodPatch)
	admin.HandleFunc("/tours/{tourId:[0-9]+}", tours.Delete).Methods(http.MethodDelete)

	// --- Gestión del transporte ---
	admin.HandleFunc("/transport", transport.Create).Methods(http.MethodPost)
	admin.HandleFunc("/transport/{transportId:[0-9]+}", transport.Update).Methods(http.MethodPut, http.MethodPatch)
	admin.HandleFunc("/transport/{transportId:[0-9]+}", transport.Delete).Methods(http.MethodDelete)

	// --- Gestión de usuarios ---
	admin.HandleFunc("/users", users.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId:[0-9]+}", users.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId:[0-9]+}", users.Update).Methods(http.MethodPut, http.MethodPatch)
	admin.HandleFunc("/users/{userId:[0-9]+}", users.Delete).Methods(http.MethodDelete)

	// --- Subida de imágenes ---
	admin.HandleFunc("/uploads", uploads.Upload).Methods(http.MethodPost)
	admin.HandleFunc("/uploads/{publicId}", uploads.Delete).Methods(http.MethodDelete)

	// CORS para el frontend
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "X-User-ID"},
		AllowCredentials: true,
	}).Handler(r)

	// Creamos el servidor HTTP
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
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Esperamos la señal de parada
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Paramos la recolección de métricas del connection pool
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
