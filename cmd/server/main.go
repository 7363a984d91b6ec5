package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"simci/internal/catalog"
	"simci/internal/common"
	"simci/internal/engine"
	"simci/internal/server/handler"
	"simci/internal/server/scheduler"
	"simci/internal/store"
)

func main() {
	common.InitConf()
	common.InitLog()
	config := common.GetConfig()
	logger := common.GetLogger()
	defer logger.Sync()

	st, err := openStore(config, logger)
	if err != nil {
		logger.Fatal("open store failed", zap.Error(err))
	}

	cat := catalog.Default()
	if config.CatalogPath != "" {
		cat, err = catalog.LoadFile(config.CatalogPath)
		if err != nil {
			logger.Fatal("load catalog failed", zap.String("path", config.CatalogPath), zap.Error(err))
		}
	}

	sim := engine.NewSimulator(cat, config.RandSeed)
	tracker := engine.NewTracker(st, logger)
	eng := engine.New(cat, sim, tracker, st, logger)

	sched := scheduler.New(eng, logger)
	sched.Load(cat.Schedules)
	sched.Start()

	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	handler.New(eng, st).Register(r)

	srv := &http.Server{
		Addr:    config.Addr,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", config.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	sched.Stop()
	eng.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server exiting")
}

func openStore(config common.Config, logger *zap.Logger) (store.Store, error) {
	if config.StoreDriver == "sqlite" {
		return store.NewDBStore(config.SQLitePath, logger)
	}
	return store.NewFileStore(config.DataDir, logger)
}
