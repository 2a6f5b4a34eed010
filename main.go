package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tastedash/tastedash/config"
	"github.com/tastedash/tastedash/gologger"
	"github.com/tastedash/tastedash/http_server"
	"github.com/tastedash/tastedash/utils"
)

var logger = gologger.NewLogger()

func main() {
	logger.Debug().Msg("starting tastedash report api")

	cfg, err := config.LoadConfig(utils.CONFIG_PATH)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Str("path", utils.CONFIG_PATH).Msg("no config file found, using built-in defaults")
			cfg = config.Default()
		} else {
			logger.Error().Err(err).Msg("error loading config")
			os.Exit(1)
		}
	}

	app := NewApp(cfg)

	warmCtx, warmCancel := context.WithTimeout(context.Background(), time.Second*60)
	if err := app.WarmCache(warmCtx); err != nil {
		warmCancel()
		logger.Error().Err(err).Msg("error loading dataset at boot")
		os.Exit(1)
	}
	warmCancel()

	httpServer := http_server.StartHTTPServer(app.Reports)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	logger.Warn().Msg("received shutdown signal!")

	// For load balancers needing some time to de-register the pod
	sleepTime := utils.GetEnvOrDefaultInt("SHUTDOWN_SLEEP_SEC", 0)
	logger.Info().Msg(fmt.Sprintf("sleeping for %ds before exiting", sleepTime))

	time.Sleep(time.Second * time.Duration(sleepTime))
	logger.Info().Msg(fmt.Sprintf("slept for %ds, exiting", sleepTime))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown HTTP server")
	} else {
		logger.Info().Msg("successfully shutdown HTTP server")
	}
}
