package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/analysis"
	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/db"
	"github.com/ignatzorin/portfolio-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/portfolio-backend/internal/http/router"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	// Хранилище фотографий и профиля: бэкенд выбирается конфигурацией.
	var store storage.Storage
	var dbConn *sqlx.DB

	switch cfg.StorageDriver {
	case config.StorageDriverDatabase:
		dbConn, err = db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("main: ошибка подключения к базе: %v", err)
		}
		defer safeClose(dbConn)

		if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
			log.Fatalf("main: ошибка миграций: %v", err)
		}
		store = storage.NewDatabaseStorage(dbConn)
	default:
		store, err = storage.NewFileStorage(cfg.DataPath)
		if err != nil {
			log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
		}
	}

	// Блог и портфолио всегда файловые.
	blogStore := storage.NewBlogStore(filepath.Join(cfg.DataPath, "blog-posts.json"))
	portfolioStore := storage.NewPortfolioStore(filepath.Join(cfg.DataPath, "portfolio-items.json"))

	analyzer := analysis.NewMetadataAnalyzer()

	// HTTP хэндлеры.
	photoHandler := httpHandlers.NewPhotoHandler(store, analyzer)
	profileHandler := httpHandlers.NewProfileHandler(store)
	blogHandler := httpHandlers.NewBlogHandler(blogStore)
	portfolioHandler := httpHandlers.NewPortfolioHandler(portfolioStore)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, photoHandler, profileHandler, blogHandler, portfolioHandler, healthHandler)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGoWithContext(ctx, func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	})

	log.Printf("main: HTTP сервер запущен на порту %s (хранилище: %s)", cfg.HTTPPort, cfg.StorageDriver)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
