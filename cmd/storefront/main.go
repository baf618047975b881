package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/techmarket/docs/storefront"
	"github.com/SergeyBogomolovv/techmarket/internal/app"
	"github.com/SergeyBogomolovv/techmarket/internal/catalog"
	"github.com/SergeyBogomolovv/techmarket/internal/checkout"
	"github.com/SergeyBogomolovv/techmarket/internal/config"
	"github.com/SergeyBogomolovv/techmarket/internal/events"
	"github.com/SergeyBogomolovv/techmarket/internal/marketplace"
	"github.com/SergeyBogomolovv/techmarket/internal/session"
	"github.com/SergeyBogomolovv/techmarket/internal/storefront"

	"github.com/joho/godotenv"
)

// @title           TechMarket Storefront API
// @version         1.0
// @description     Sessions, cart, checkout and order management of the TechMarket storefront
func main() {
	conf := config.NewStorefront()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	client := marketplace.NewClient(logger, conf.Marketplace)
	catalogService := catalog.New(logger, client, conf.Catalog.TTL)
	validator := checkout.NewValidator(conf.Checkout.MinOrderTotal)
	registry := session.NewRegistry(logger, client, catalogService, validator, conf.Session.Capacity, conf.Session.TTL)

	httpHandler := storefront.NewHTTPHandler(logger, registry, catalogService, validator.MinTotal())
	consumer := events.NewConsumer(logger, events.NewReader(conf.Kafka), events.NewWriter(conf.Kafka, ""), registry)

	storefront.RegisterMetrics()
	events.RegisterConsumerMetrics()

	app := app.New(logger, conf.Http, conf.Cors)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(consumer)
	app.SetStarters(registry)

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
