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

	"sentimentservice/internal/chart"
	"sentimentservice/internal/classifier"
	"sentimentservice/internal/config"
	"sentimentservice/internal/domain"
	"sentimentservice/internal/handler"
	"sentimentservice/internal/observability"
	"sentimentservice/internal/repository/postgres"
	"sentimentservice/internal/service"
	"sentimentservice/internal/sessions"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting application",
		zap.String("env", cfg.App.Env),
		zap.String("log_level", cfg.App.LogLevel))

	// Запуск миграций. Недоступность базы на старте не фатальна:
	// сервис продолжает работу, обращения к хранилищу будут падать
	// в момент вызова.
	if err := runMigrations(cfg.Database, logger); err != nil {
		logger.Error("failed to run migrations, continuing without them", zap.Error(err))
	}

	// Подключение к БД
	db, err := postgres.NewDB(postgres.Config{
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := postgres.CheckConn(db); err != nil {
		logger.Error("database unreachable at startup, continuing", zap.Error(err))
	} else {
		logger.Info("connected to database")
	}

	// Инициализация зависимостей
	app, err := initApp(cfg, db, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// Создание HTTP сервера
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      app.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server", zap.String("address", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
			if err := srv.Close(); err != nil {
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}
		}

		logger.Info("server stopped gracefully")
	}

	return nil
}

// App содержит все зависимости приложения
type App struct {
	router http.Handler
}

// initApp инициализирует приложение
func initApp(cfg *config.Config, db *sql.DB, logger *zap.Logger) (*App, error) {
	// Repositories
	reviewRepo := postgres.NewReviewRepository(db)
	adminRepo := postgres.NewAdminRepository(db)

	// Классификатор тональности
	clf, err := initClassifier(cfg.Classifier, logger)
	if err != nil {
		return nil, err
	}

	// Метрики
	metrics := observability.NewCollector("sentimentservice")

	// Процессные счётчики и лента последних отзывов
	counters := service.NewCounterTracker(50)

	// Services
	ingestService := service.NewIngestService(clf, counters, reviewRepo, metrics, logger)
	statsService := service.NewStatsService(reviewRepo, logger)
	authService := service.NewAuthService(adminRepo, logger)

	// Сессии администратора
	sessionManager := sessions.NewManager(cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.MaxAge)

	// Шаблоны страниц
	templates, err := handler.LoadTemplates()
	if err != nil {
		return nil, err
	}

	// Handlers
	reviewHandler := handler.NewReviewHandler(ingestService, counters, templates, logger)
	adminHandler := handler.NewAdminHandler(
		authService, statsService, sessionManager,
		chart.NewPieRenderer(), metrics, templates, logger,
	)

	// Router
	router := handler.Router(reviewHandler, adminHandler, sessionManager, metrics, logger)

	return &App{
		router: router,
	}, nil
}

// initClassifier выбирает реализацию классификатора по конфигурации
func initClassifier(cfg config.ClassifierConfig, logger *zap.Logger) (domain.Classifier, error) {
	switch cfg.Mode {
	case "lexicon":
		logger.Info("using built-in lexicon classifier")
		return classifier.NewLexicon(), nil
	case "remote":
		if cfg.URL == "" {
			return nil, fmt.Errorf("CLASSIFIER_URL is required for remote mode")
		}
		logger.Info("using remote classifier", zap.String("url", cfg.URL))
		return classifier.NewRemote(cfg.URL, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown classifier mode: %s", cfg.Mode)
	}
}

// initLogger инициализирует структурированный логгер
func initLogger(level string) (*zap.Logger, error) {
	var zapConfig zap.Config

	if level == "debug" {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	// Парсим уровень логирования
	if err := zapConfig.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

// runMigrations выполняет миграции БД
func runMigrations(cfg config.DatabaseConfig, logger *zap.Logger) error {
	logger.Info("running database migrations", zap.String("path", cfg.MigrationsPath))

	m, err := migrate.New(cfg.MigrationsPath, cfg.MigrateURL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("database migrations completed successfully")
	return nil
}
