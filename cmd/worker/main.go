// cmd/worker/main.go
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"course-admin-backend/pkg/container"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("[Worker] Exited with error")
	}
}

// run: config → container (DB, Redis, cascade service) → asynq server + scheduler → chờ signal
func run() error {
	cfg := loadConfig()

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("initialize container: %w", err)
	}
	defer c.Cleanup()

	if err := startServices(c, cfg.Worker.HealthPort); err != nil {
		return fmt.Errorf("startup checks: %w", err)
	}

	srv, err := setupAsynqServer(c.RedisOpt, cfg.Worker.Concurrency, initializeHandlers(c))
	if err != nil {
		return err
	}

	scheduler, err := setupScheduler(c.RedisOpt, cfg.Worker.ReconcileCron)
	if err != nil {
		srv.Shutdown()
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("[Shutdown] Gracefully stopping...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Info().Msg("[Shutdown] ✓ Stopped")
	return nil
}
