// Package main - Entry point for the cablesize API server
package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"cablesize/api"
	"cablesize/internal/config"
	"cablesize/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "server address (default from config)")
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			logging.Fatal("failed to load config", zap.Error(err))
		}
		config.Set(cfg)
	}
	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("failed to initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", api.NewServer(version)))

	logging.Info("cablesize server listening",
		zap.String("addr", listen), zap.String("version", version))

	if err := http.ListenAndServe(listen, mux); err != nil {
		logging.Fatal("server exited", zap.Error(err))
	}
}
