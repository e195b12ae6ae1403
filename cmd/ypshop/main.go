package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MikeRez0/ypshop/internal/adapter/auth"
	"github.com/MikeRez0/ypshop/internal/adapter/broker"
	"github.com/MikeRez0/ypshop/internal/adapter/config"
	"github.com/MikeRez0/ypshop/internal/adapter/handler/http"
	"github.com/MikeRez0/ypshop/internal/adapter/lock"
	"github.com/MikeRez0/ypshop/internal/adapter/logger"
	"github.com/MikeRez0/ypshop/internal/adapter/metrics"
	"github.com/MikeRez0/ypshop/internal/adapter/relay"
	"github.com/MikeRez0/ypshop/internal/adapter/storage"
	"github.com/MikeRez0/ypshop/internal/adapter/storage/repository"
	"github.com/MikeRez0/ypshop/internal/core/port"
	"github.com/MikeRez0/ypshop/internal/core/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	policy, err := config.LoadInstallmentPolicy(conf.Policy)
	if err != nil {
		log.Error("installment policy error", zap.Error(err))
		return
	}

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	defer db.Close()
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	var locker port.OrderLocker = lock.NewLocalLocker()
	if conf.Redis.Addr != "" {
		rdb, err := lock.NewRedisClient(ctx, conf.Redis.Addr)
		if err != nil {
			log.Error("redis error", zap.Error(err))
			return
		}
		defer func() { _ = rdb.Close() }()
		locker = lock.NewRedisLocker(rdb, log.Named("Lock"))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	publisher, err := broker.New(conf.Broker, log.Named("Events"))
	if err != nil {
		log.Error("event broker error", zap.Error(err))
		return
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("event broker close error", zap.Error(err))
		}
	}()

	outboxRelay, err := relay.NewRelay(conf.Relay, repo, publisher, m, log.Named("Relay"))
	if err != nil {
		log.Error("relay creating error", zap.Error(err))
		return
	}
	outboxRelay.Start(ctx, conf.Relay.Workers)
	if _, err := outboxRelay.Schedule(ctx, conf.Relay.Interval); err != nil {
		log.Error("relay schedule error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, locker, policy, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	notifyHandler, err := http.NewNotifyHandler(svc, m, log.Named("Notify handler"))
	if err != nil {
		log.Error("notify handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.App, tokenService, m, orderHandler, notifyHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	log.Info("Starting", zap.String("address", conf.HTTP.HostString), zap.String("broker", conf.Broker.Kind))
	err = r.Serve(ctx, conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
