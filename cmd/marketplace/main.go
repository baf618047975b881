package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/techmarket/docs/marketplace"
	"github.com/SergeyBogomolovv/techmarket/internal/app"
	"github.com/SergeyBogomolovv/techmarket/internal/config"
	"github.com/SergeyBogomolovv/techmarket/internal/events"
	"github.com/SergeyBogomolovv/techmarket/internal/handler"
	"github.com/SergeyBogomolovv/techmarket/internal/postgres"
	"github.com/SergeyBogomolovv/techmarket/internal/repo"
	"github.com/SergeyBogomolovv/techmarket/internal/service"
	"github.com/SergeyBogomolovv/techmarket/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           TechMarket Marketplace API
// @version         1.0
// @description     Catalog, accounts and orders of the TechMarket marketplace
func main() {
	conf := config.NewMarketplace()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(db))

	marketRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	publisher := events.NewPublisher(logger, events.NewWriter(conf.Kafka, conf.Kafka.Topic))

	catalogService := service.NewCatalogService(logger, marketRepo, marketRepo)
	accountService := service.NewAccountService(logger, marketRepo)
	orderService := service.NewOrderService(logger, txManager, marketRepo, marketRepo, publisher, conf.Checkout.MinOrderTotal)

	httpHandler := handler.NewHTTPHandler(logger, catalogService, accountService, orderService)

	handler.RegisterMetrics()
	events.RegisterPublisherMetrics()

	app := app.New(logger, conf.Http, conf.Cors)

	app.SetHTTPHandlers(httpHandler)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
