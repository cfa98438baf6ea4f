package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"coffeeos/internal/app/notify"
	"coffeeos/internal/app/posapi"
	"coffeeos/internal/app/seed"
	"coffeeos/internal/common/logger"
	"coffeeos/internal/config"
	"coffeeos/internal/connections/database"
	"coffeeos/internal/connections/rabbitmq"
)

func main() {
	mode := flag.String("mode", "", "pos-api | notification-subscriber | seed")
	cfgPath := flag.String("config", "config.yml", "path to config file")
	port := flag.Int("port", 0, "override http port for pos-api")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		lg.Error("config_load_failed", err, nil)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Error("db_connect_failed", err, nil)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.ApplySchema(ctx, pool); err != nil {
		lg.Error("schema_apply_failed", err, nil)
		os.Exit(1)
	}

	switch *mode {
	case "pos-api":
		rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			lg.Error("rabbitmq_connect_failed", err, nil)
			os.Exit(1)
		}
		defer rmq.Close()
		if err := rmq.DeclareTopology(); err != nil {
			lg.Error("rabbitmq_declare_failed", err, nil)
			os.Exit(1)
		}

		lg.Info("service_started", map[string]any{"service": "pos-api", "port": cfg.HTTP.Port})
		if err := posapi.Run(ctx, cfg, pool, rmq, logger.New("pos-api")); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notification-subscriber":
		rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			lg.Error("rabbitmq_connect_failed", err, nil)
			os.Exit(1)
		}
		defer rmq.Close()
		if err := rmq.DeclareTopology(); err != nil {
			lg.Error("rabbitmq_declare_failed", err, nil)
			os.Exit(1)
		}

		lg.Info("service_started", map[string]any{"service": "notification-subscriber"})
		if err := notify.Run(ctx, rmq, logger.New("notification-subscriber")); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "seed":
		if err := seed.Run(ctx, pool, logger.New("seed")); err != nil {
			lg.Error("seed_failed", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: pos-api | notification-subscriber | seed")
		os.Exit(2)
	}
}
