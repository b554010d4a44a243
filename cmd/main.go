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
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mahadtoukaleh/CodeClarity/internal/api/handlers"
	getCountdownHandler "github.com/mahadtoukaleh/CodeClarity/internal/api/handlers/get_enrollment_countdown"
	getTimeSlotsHandler "github.com/mahadtoukaleh/CodeClarity/internal/api/handlers/get_time_slots"
	submitBootcampHandler "github.com/mahadtoukaleh/CodeClarity/internal/api/handlers/submit_bootcamp"
	submitConsultationHandler "github.com/mahadtoukaleh/CodeClarity/internal/api/handlers/submit_consultation"
	"github.com/mahadtoukaleh/CodeClarity/internal/api/middleware"
	"github.com/mahadtoukaleh/CodeClarity/internal/config"
	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
	deliveryRepo "github.com/mahadtoukaleh/CodeClarity/internal/infra/storage/delivery"
	"github.com/mahadtoukaleh/CodeClarity/internal/integrations/resend"
	"github.com/mahadtoukaleh/CodeClarity/internal/integrations/smtpmail"
	"github.com/mahadtoukaleh/CodeClarity/internal/notifier"
	getCountdownUC "github.com/mahadtoukaleh/CodeClarity/internal/usecase/get_enrollment_countdown"
	getTimeSlotsUC "github.com/mahadtoukaleh/CodeClarity/internal/usecase/get_time_slots"
	submitBootcampUC "github.com/mahadtoukaleh/CodeClarity/internal/usecase/submit_bootcamp"
	submitConsultationUC "github.com/mahadtoukaleh/CodeClarity/internal/usecase/submit_consultation"
	"github.com/mahadtoukaleh/CodeClarity/pkg/logger"
	"github.com/mahadtoukaleh/CodeClarity/pkg/metrics"
	"github.com/mahadtoukaleh/CodeClarity/pkg/tracing"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		*configPath = env
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

	log.Info("Starting CodeClarity intake service...")
	log.Info("Configuration loaded from %s", *configPath)

	// Трассировка
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to set up tracing: %v", err)
	}
	if cfg.Tracing.Enabled {
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.OTLPEndpoint)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Транспорт уведомлений
	transport := buildTransport(cfg, log)
	log.Info("Notifier transport: %s, operator=%s", transport.Name(), cfg.Notifier.OperatorEmail)

	notifierOpts := []notifier.Option{}
	if metricsCollector != nil {
		notifierOpts = append(notifierOpts, notifier.WithMetrics(metricsCollector))
	}

	// Журнал доставки (опционально)
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(pingCtx)
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Delivery log enabled (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		notifierOpts = append(notifierOpts, notifier.WithRecorder(deliveryRepo.NewRepository(db)))
	}

	emailNotifier := notifier.NewNotifier(transport, log, notifierOpts...)

	operator := domain.Recipient{Name: cfg.Notifier.OperatorName, Email: cfg.Notifier.OperatorEmail}

	deadline, err := cfg.Bootcamp.Deadline(time.Local)
	if err != nil {
		log.Fatal("Invalid bootcamp deadline: %v", err)
	}

	// Инициализируем use cases
	submitConsultationUseCase := submitConsultationUC.NewUseCase(emailNotifier, operator, metricsCollector, log)
	submitBootcampUseCase := submitBootcampUC.NewUseCase(emailNotifier, operator, metricsCollector, log)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(log)
	getCountdownUseCase := getCountdownUC.NewUseCase(deadline)

	// Инициализируем handlers
	submitConsultation := submitConsultationHandler.NewHandler(submitConsultationUseCase, log)
	submitBootcamp := submitBootcampHandler.NewHandler(submitBootcampUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	getCountdown := getCountdownHandler.NewHandler(getCountdownUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Заявки
	api.HandleFunc("/consultations", submitConsultation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bootcamp/enrollments", submitBootcamp.Handle).Methods(http.MethodPost)

	// Справочные данные для форм
	api.HandleFunc("/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bootcamp/countdown", getCountdown.Handle).Methods(http.MethodGet)

	// Старые пути форм сайта
	r.HandleFunc("/api/contact", submitConsultation.Handle).Methods(http.MethodPost)
	r.HandleFunc("/api/bootcamp", submitBootcamp.Handle).Methods(http.MethodPost)

	// CORS оборачивает роутер целиком: preflight OPTIONS не совпадает с маршрутами POST
	var handler http.Handler = middleware.CORS(cfg.Server.AllowedOrigins)(r)
	handler = otelhttp.NewHandler(handler, cfg.Metrics.ServiceName)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// buildTransport выбирает транспорт уведомлений по notifier.provider
func buildTransport(cfg *config.Config, log *logger.Logger) notifier.Transport {
	switch cfg.Notifier.Provider {
	case config.ProviderResend:
		client := resend.NewClient(
			cfg.Notifier.Resend.BaseURL,
			cfg.Notifier.Resend.APIKey,
			time.Duration(cfg.Notifier.Resend.Timeout)*time.Second,
			log,
		)
		return notifier.NewResendTransport(client, cfg.Notifier.From)

	case config.ProviderSMTP:
		sender := smtpmail.NewSender(
			cfg.Notifier.SMTP.Host,
			cfg.Notifier.SMTP.Port,
			cfg.Notifier.SMTP.Username,
			cfg.Notifier.SMTP.Password,
			cfg.Notifier.From,
		)
		return notifier.NewSMTPTransport(sender)

	default:
		log.Warn("Notifier provider is %q: emails are written to the log only", cfg.Notifier.Provider)
		return notifier.NewLogTransport(log)
	}
}
