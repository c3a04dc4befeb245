// Command server runs the printcost HTTP API.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"printcost/adapters/ratefile"
	"printcost/api"
	"printcost/core/engine"
	"printcost/core/rates"
	"printcost/core/types"
	"printcost/internal/config"
	"printcost/internal/logging"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	cfgPath := flag.String("config", "", "config file path")
	ratesPath := flag.String("rates", "", "HCL rate file merged over the built-in rates")
	flag.Parse()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			logging.Error("loading config", zap.Error(err))
			os.Exit(1)
		}
		config.Set(cfg)
		if err := logging.Initialize(cfg.Logging); err != nil {
			logging.Error("initializing logging", zap.Error(err))
			os.Exit(1)
		}
	}

	var (
		tables   *rates.RateTables
		machines types.MachineSet
		err      error
	)
	path := *ratesPath
	if path == "" {
		path = config.Get().Rates.Path
	}
	if path != "" {
		tables, machines, err = ratefile.Load(path)
		if err != nil {
			logging.Error("loading rate file", zap.Error(err))
			os.Exit(1)
		}
	} else {
		tables, machines = rates.Default(), rates.DefaultMachines()
	}

	server := api.NewServer(engine.New(tables, machines), *addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logging.Error("server failed", zap.Error(err))
			os.Exit(1)
		}
	case <-ctx.Done():
		logging.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logging.Error("shutdown failed", zap.Error(err))
		}
	}
	logging.Sync()
}
