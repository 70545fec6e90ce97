package main

import (
	"time"

	"github.com/joho/godotenv"

	"github.com/MimeLyc/weather-mcp/internal/config"
	"github.com/MimeLyc/weather-mcp/internal/mcpserver"
	"github.com/MimeLyc/weather-mcp/internal/nws"
	"github.com/MimeLyc/weather-mcp/internal/tools"
	"github.com/MimeLyc/weather-mcp/pkg/log"
)

const (
	serverName    = "weather"
	serverVersion = "1.0.0"
)

func main() {
	// Load .env if present; all settings have defaults
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	level := log.ParseLevel(cfg.Log.Level)
	if cfg.Log.File != "" {
		fileLogger, err := log.NewFileLogger(cfg.Log.File, level)
		if err != nil {
			log.Fatal("Failed to open log file: %v", err)
		}
		defer fileLogger.Close()
		log.SetGlobalLogger(fileLogger.Logger)
	} else {
		log.InitLogger(level)
	}

	client := nws.NewClient(
		cfg.Weather.BaseURL,
		cfg.Weather.UserAgent,
		time.Duration(cfg.Weather.Timeout)*time.Second,
	)

	registry := tools.NewRegistry()
	for _, tool := range []tools.Tool{
		tools.NewAlertsTool(client),
		tools.NewForecastTool(client),
	} {
		if err := registry.Register(tool); err != nil {
			log.Fatal("Failed to register tool: %v", err)
		}
	}

	log.Info("Starting %s v%s with %d tools", serverName, serverVersion, registry.Count())

	srv := mcpserver.New(serverName, serverVersion, registry)
	if err := srv.ServeStdio(); err != nil {
		log.Fatal("Server terminated: %v", err)
	}
}
