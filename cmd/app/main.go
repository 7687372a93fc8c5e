package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bagdasarian/devteam-dashboard/internal/config"
	"github.com/bagdasarian/devteam-dashboard/internal/db"
	"github.com/bagdasarian/devteam-dashboard/internal/handler"
	"github.com/bagdasarian/devteam-dashboard/internal/handler/server"
	"github.com/bagdasarian/devteam-dashboard/internal/logger"
	"github.com/bagdasarian/devteam-dashboard/internal/notify"
	"github.com/bagdasarian/devteam-dashboard/internal/service"
	"github.com/bagdasarian/devteam-dashboard/internal/store"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	kv, closeKV := db.MustOpenKV(ctx, cfg)
	zlog.Info("storage opened", zap.String("backend", cfg.Storage.Backend))
	defer closeKV()

	st := store.New(kv, cfg.Storage.Key, notify.NewLogNotifier(zlog), zlog)
	if err := st.Load(ctx); err != nil {
		zlog.Fatal("failed to load state", zap.Error(err))
	}

	writeMu := &sync.Mutex{}
	memberService := service.NewMemberService(st, writeMu, zlog)
	projectService := service.NewProjectService(st, writeMu, zlog)
	taskService := service.NewTaskService(st, writeMu, zlog)
	deletionService := service.NewDeletionService(st, writeMu, cfg.Deletion.PendingTTL, zlog)

	h := handler.NewHandler(st, memberService, projectService, taskService, deletionService, zlog)
	srv := server.NewServer(h, cfg.HTTP.Addr, zlog)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}
}
