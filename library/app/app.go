package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/libkeeper/library-service/library/config"
	"github.com/libkeeper/library-service/library/internal/handler"
	"github.com/libkeeper/library-service/library/internal/repository"
	"github.com/libkeeper/library-service/library/internal/server"
	"github.com/libkeeper/library-service/library/internal/service"
	"github.com/libkeeper/library-service/pkg/logger"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	store := repository.NewStore(log)

	catalogSvc := service.NewCatalog(store, log)
	registrySvc := service.NewRegistry(store, log)
	ledgerSvc := service.NewLedger(store, log)

	h := handler.New(catalogSvc, registrySvc, ledgerSvc, log)
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
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
