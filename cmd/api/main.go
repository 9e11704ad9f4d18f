package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/TsaqifHasbi/todo-api-go/internal/config"
	"github.com/TsaqifHasbi/todo-api-go/internal/handler"
	"github.com/TsaqifHasbi/todo-api-go/internal/service"
	"github.com/TsaqifHasbi/todo-api-go/internal/store"
	"github.com/TsaqifHasbi/todo-api-go/internal/store/memory"
	"github.com/TsaqifHasbi/todo-api-go/internal/store/mysql"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	st, cleanup, err := openStore(cfg)
	if err != nil {
		slog.Error("store initialization failed", "store", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	authService := service.NewAuthService(st, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	taskService := service.NewTaskService(st)
	taskHandler := handler.NewTaskHandler(taskService)

	r := handler.NewRouter(cfg.JWTSecret, authHandler, taskHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "store", cfg.Store)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// openStore builds the configured storage engine. The choice is made once at
// startup; engines are never mixed within a running process.
func openStore(cfg config.Config) (store.Store, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.New(), func() {}, nil
	default:
		st, err := mysql.New(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := st.Migrate(context.Background()); err != nil {
			st.Close()
			return nil, nil, err
		}
		return st, func() { st.Close() }, nil
	}
}
