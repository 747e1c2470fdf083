package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/listing-reviews/internal/config"
	"github.com/ignatzorin/listing-reviews/internal/domain/repository"
	"github.com/ignatzorin/listing-reviews/internal/goroutine"
	httpRouter "github.com/ignatzorin/listing-reviews/internal/http/router"
	"github.com/ignatzorin/listing-reviews/internal/infrastructure/fixture"
	"github.com/ignatzorin/listing-reviews/internal/infrastructure/hostaway"
	"github.com/ignatzorin/listing-reviews/internal/interface/http/handler"
	"github.com/ignatzorin/listing-reviews/internal/logger"
	"github.com/ignatzorin/listing-reviews/internal/service"
	"github.com/ignatzorin/listing-reviews/internal/usecase/listing"
	"github.com/ignatzorin/listing-reviews/internal/usecase/review"
)

// sources - выбранная реализация портов данных.
type sources struct {
	reviews  repository.ReviewSource
	listings repository.ListingSource
	pinger   repository.Pinger
}

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logger.Init(cfg.LogLevel)
	if !cfg.IsProduction() {
		logger.SetTextFormatter()
	}
	lg := logger.Get()

	src, err := buildSources(cfg)
	if err != nil {
		lg.WithError(err).Fatal("main: не удалось подготовить источник данных")
	}

	authorizer, err := service.NewAdminAuthorizer(cfg.AdminToken, cfg.JWTSecret, cfg.AdminTokenTTL)
	if err != nil {
		lg.WithError(err).Fatal("main: не удалось подготовить проверку прав администратора")
	}

	// Use cases.
	listReviewsUC := review.NewListReviewsUseCase(src.reviews)
	getReviewUC := review.NewGetReviewUseCase(src.reviews)
	updateReviewStatusUC := review.NewUpdateReviewStatusUseCase(src.reviews)
	listListingsUC := listing.NewListListingsUseCase(src.listings)
	getListingUC := listing.NewGetListingUseCase(src.listings)

	// HTTP хэндлеры.
	reviewHandler := handler.NewReviewHandler(listReviewsUC, getReviewUC, updateReviewStatusUC)
	listingHandler := handler.NewListingHandler(listListingsUC, getListingUC)
	healthHandler := handler.NewHealthHandler(map[string]repository.Pinger{cfg.ReviewSource: src.pinger}, 5*time.Second)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authorizer, reviewHandler, listingHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGoWithContext(ctx, func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.WithError(err).Error("main: ошибка остановки http сервера")
		}
	})

	lg.WithFields(logrus.Fields{
		"port":   cfg.HTTPPort,
		"env":    cfg.Env,
		"source": cfg.ReviewSource,
	}).Info("main: HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.WithError(err).Fatal("main: сервер завершился с ошибкой")
	}
	lg.Info("main: сервер остановлен")
}

// buildSources выбирает источник отзывов и объявлений по REVIEW_SOURCE.
func buildSources(cfg *config.Config) (sources, error) {
	if cfg.ReviewSource == config.SourceHostaway {
		client := hostaway.NewClient(cfg.HostawayBaseURL, cfg.HostawayAccessToken, cfg.HostawayTimeout)
		reviews := hostaway.NewReviewSource(client)
		return sources{
			reviews:  reviews,
			listings: hostaway.NewListingSource(client),
			pinger:   reviews,
		}, nil
	}

	store, err := fixture.NewSeededStore()
	if err != nil {
		return sources{}, err
	}
	reviews := fixture.NewReviewSource(store)
	return sources{
		reviews:  reviews,
		listings: fixture.NewListingSource(store),
		pinger:   reviews,
	}, nil
}
