package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/ureserve/gateway/config"
	"github.com/Astemirdum/ureserve/gateway/internal/coordinator"
	"github.com/Astemirdum/ureserve/gateway/internal/handler"
	"github.com/Astemirdum/ureserve/gateway/internal/server"
	"github.com/Astemirdum/ureserve/gateway/internal/service/events"
	"github.com/Astemirdum/ureserve/gateway/internal/service/facility"
	"github.com/Astemirdum/ureserve/gateway/internal/session"
	"github.com/Astemirdum/ureserve/pkg/kafka"
	"github.com/Astemirdum/ureserve/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "gateway")
	defer log.Sync() //nolint:errcheck

	client := facility.NewService(log, cfg.RemoteHTTPServer)
	codes := coordinator.NewCodes(0)
	opts := []coordinator.Option{coordinator.WithCodes(codes)}

	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewSyncProducer(cfg.Kafka)
		if err != nil {
			log.DPanic("kafka", zap.Error(err))
			return errors.Wrap(err, "kafka producer")
		}
		defer producer.Close()
		opts = append(opts, coordinator.WithNotifier(events.NewPublisher(producer, cfg.Kafka.ReservationTopic, log)))
	} else {
		log.Info("kafka disabled, reservation events are not published")
	}

	sessions := session.NewStore(func() *coordinator.Coordinator {
		return coordinator.New(client, log, opts...)
	}, cfg.Session.TTL, log)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	janitorDone := make(chan struct{})
	go func() {
		sessions.Run(ctx)
		close(janitorDone)
	}()

	h := handler.New(client, sessions, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	stop()
	<-janitorDone

	log.Info("Graceful shutdown finished")
	return nil
}
