package main

import (
	"context"
	"os/signal"
	"syscall"

	"catalog/internal/config"
	"catalog/internal/handler"
	"catalog/internal/infra/db"
	infraRepo "catalog/internal/infra/repository"
	"catalog/internal/logger"
	"catalog/internal/metrics"
	"catalog/internal/server"
	"catalog/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい（環境変数を直接渡す運用）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log, err := logger.New(cfg.GoEnv, cfg.LogLevel)
	if err != nil {
		panic("init logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	if cfg.DBAutoMigrate {
		if err := db.Migrate(gormDB); err != nil {
			log.Fatal("failed to migrate", zap.Error(err))
		}
	}

	m := metrics.New(prometheus.DefaultRegisterer, cfg.MetricsNamespace)

	//Repository（GORM実装）
	tagRepo := infraRepo.NewTagGormRepository(gormDB)
	brandRepo := infraRepo.NewBrandGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	stockRepo := infraRepo.NewStockGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)

	//Usecase
	limit := cfg.DefaultPageLimit
	tagUC := usecase.NewTagUsecase(tagRepo, limit, log)
	brandUC := usecase.NewBrandUsecase(brandRepo, limit, log)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, auditRepo, m, limit, log)
	batchUC := usecase.NewProductBatchUsecase(productRepo, categoryRepo, stockRepo, auditRepo, m, log)
	productUC := usecase.NewProductUsecase(productRepo, stockRepo, batchUC, limit, log)
	auditUC := usecase.NewAuditLogUsecase(auditRepo, limit, log)

	//Server起動
	srv := server.New(cfg, log, m, prometheus.DefaultGatherer,
		handler.NewTagHandler(tagUC),
		handler.NewBrandHandler(brandUC),
		handler.NewCategoryHandler(categoryUC),
		handler.NewProductHandler(productUC, batchUC),
		handler.NewAuditLogHandler(auditUC),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
