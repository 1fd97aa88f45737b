package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dkruglov/lending-service/config"
	"github.com/dkruglov/lending-service/internal/catalog"
	"github.com/dkruglov/lending-service/internal/handler"
	"github.com/dkruglov/lending-service/internal/server"
	"github.com/dkruglov/lending-service/internal/service"
	"github.com/dkruglov/lending-service/pkg/kafka"
	"github.com/dkruglov/lending-service/pkg/logger"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "catalog")

	cat := catalog.New(cfg.Catalog.FinePerDay)
	svc := service.NewService(cat, log)

	var enq handler.Enqueuer
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		enq = handler.NewEnqueuer(producer)
	} else {
		log.Info("kafka addrs empty, lending events are log-only")
	}

	h := handler.New(svc, enq, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("app run", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
